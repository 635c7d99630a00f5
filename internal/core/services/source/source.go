// Package source materializes the source and destination variants handed
// over by a caller into the streams the codec engine reads and writes.
package source

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/iamNilotpal/lazrs/internal/adapters/stream"
	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/internal/core/ports"
	pkgerrors "github.com/iamNilotpal/lazrs/pkg/errors"
	"github.com/iamNilotpal/lazrs/pkg/sizing"
)

var (
	errNilSource      = errors.New("source is nil")
	errNilDestination = errors.New("destination is nil")
	errNilFile        = errors.New("file is nil")
	errNilCallbacks   = errors.New("callbacks are nil")
	errInvalidPath    = errors.New("path is not valid utf-8")
	errPathNotFound   = errors.New("path does not exist")
	errOffsetRange    = errors.New("source offset does not fit a stream position")
)

type Builder struct {
	fs ports.FileSystemPort
}

func NewBuilder(fs ports.FileSystemPort) *Builder {
	return &Builder{fs: fs}
}

// Open returns the stream behind src positioned at offset. The closer is
// non-nil when the stream owns a file the caller must close once done.
func (b *Builder) Open(src domain.Source, offset uint64) (ports.Source, io.Closer, error) {
	s, closer, err := b.open(src)
	if err != nil {
		return nil, nil, err
	}

	pos, err := sizing.ToInt64(offset, errOffsetRange)
	if err == nil {
		_, err = s.Seek(pos, io.SeekStart)
	}
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, nil, pkgerrors.NewIOError("seek to source offset", err)
	}

	return s, closer, nil
}

func (b *Builder) open(src domain.Source) (ports.Source, io.Closer, error) {
	switch v := src.(type) {
	case domain.BufferSource:
		return stream.NewMemoryStream(v.Data), nil, nil
	case domain.FileSource:
		if v.File == nil {
			return nil, nil, pkgerrors.New(pkgerrors.ErrorConfig, "open file source", errNilFile)
		}
		return stream.NewFileStream(v.File), nil, nil
	case domain.PathSource:
		if !utf8.Valid(v.Name) {
			return nil, nil, pkgerrors.NewIOError("open path source", errInvalidPath)
		}
		name := string(v.Name)
		exists, err := b.fs.Exists(name)
		if err != nil {
			return nil, nil, pkgerrors.NewIOError("stat path source", err)
		}
		if !exists {
			return nil, nil, pkgerrors.Errorf(pkgerrors.ErrorIO, "open path source", "%w: %q", errPathNotFound, name)
		}

		file, err := b.fs.OpenBuffered(name)
		if err != nil {
			return nil, nil, pkgerrors.NewIOError("open path source", err)
		}
		return file, file, nil
	case domain.CustomSource:
		if v.Callbacks == nil {
			return nil, nil, pkgerrors.New(pkgerrors.ErrorConfig, "open custom source", errNilCallbacks)
		}
		return stream.NewCustomSourceStream(v.Callbacks), nil, nil
	default:
		return nil, nil, pkgerrors.New(pkgerrors.ErrorConfig, "open source", errNilSource)
	}
}

// OpenDestination returns the stream behind dst. Destinations never own
// the underlying resource.
func (b *Builder) OpenDestination(dst domain.Destination) (ports.Destination, error) {
	switch v := dst.(type) {
	case domain.FileDestination:
		if v.File == nil {
			return nil, pkgerrors.New(pkgerrors.ErrorConfig, "open file destination", errNilFile)
		}
		return stream.NewFileStream(v.File), nil
	case domain.CustomDestination:
		if v.Callbacks == nil {
			return nil, pkgerrors.New(pkgerrors.ErrorConfig, "open custom destination", errNilCallbacks)
		}
		return stream.NewCustomDestinationStream(v.Callbacks), nil
	default:
		return nil, pkgerrors.New(pkgerrors.ErrorConfig, "open destination", errNilDestination)
	}
}
