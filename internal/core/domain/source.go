package domain

import "github.com/iamNilotpal/lazrs/internal/core/ports"

// SourceKind is the C tag of a source variant.
type SourceKind uint8

const (
	SourceBuffer SourceKind = iota // LAZRS_SOURCE_BUFFER
	SourceCFile                    // LAZRS_SOURCE_CFILE
	SourceFName                    // LAZRS_SOURCE_FNAME
	SourceCustom                   // LAZRS_SOURCE_CUSTOM
)

func (k SourceKind) String() string {
	switch k {
	case SourceBuffer:
		return "buffer"
	case SourceCFile:
		return "cfile"
	case SourceFName:
		return "fname"
	case SourceCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// DestKind is the C tag of a destination variant.
type DestKind uint8

const (
	DestCFile  DestKind = iota // LAZRS_DEST_CFILE
	DestCustom                 // LAZRS_DEST_CUSTOM
)

func (k DestKind) String() string {
	switch k {
	case DestCFile:
		return "cfile"
	case DestCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Source is the closed set of places a decompressor can read from.
// The raw C union is converted into one of these exactly once, at the edge.
type Source interface {
	Kind() SourceKind
	isSource()
}

// BufferSource is a caller owned memory region. The caller must keep it
// alive and unmodified for the lifetime of the session.
type BufferSource struct {
	Data []byte
}

// FileSource is an already open native file handle.
type FileSource struct {
	File ports.StdioFile
}

// PathSource is a length-prefixed file name that the session opens itself.
// Name holds raw bytes; they are validated as UTF-8 on construction.
type PathSource struct {
	Name []byte
}

// CustomSource is a caller supplied callback set.
type CustomSource struct {
	Callbacks ports.SourceCallbacks
}

func (BufferSource) Kind() SourceKind { return SourceBuffer }
func (FileSource) Kind() SourceKind   { return SourceCFile }
func (PathSource) Kind() SourceKind   { return SourceFName }
func (CustomSource) Kind() SourceKind { return SourceCustom }

func (BufferSource) isSource() {}
func (FileSource) isSource()   {}
func (PathSource) isSource()   {}
func (CustomSource) isSource() {}

// Destination is the closed set of places a compressor can write to.
type Destination interface {
	Kind() DestKind
	isDestination()
}

// FileDestination is an already open native file handle.
type FileDestination struct {
	File ports.StdioFile
}

// CustomDestination is a caller supplied callback set.
type CustomDestination struct {
	Callbacks ports.DestinationCallbacks
}

func (FileDestination) Kind() DestKind   { return DestCFile }
func (CustomDestination) Kind() DestKind { return DestCustom }

func (FileDestination) isDestination()   {}
func (CustomDestination) isDestination() {}
