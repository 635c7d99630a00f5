// Package domain defines the core types shared by the lazrs boundary layer:
// result codes, source and destination variants and session parameters.
package domain

// Result is the outcome of a boundary call. The numeric values are part of
// the C ABI and must never be reordered.
type Result uint8

const (
	// ResultOK indicates the call completed successfully.
	ResultOK Result = iota

	// ResultUnknownLazItem indicates the configuration names an item type
	// the codec does not know.
	ResultUnknownLazItem

	// ResultUnknownLazItemVersion indicates a known item type with a version
	// the codec cannot handle.
	ResultUnknownLazItemVersion

	// ResultUnknownCompressorType indicates a compressor id outside the
	// LASzip range.
	ResultUnknownCompressorType

	// ResultUnsupportedCompressorType indicates a known compressor id the
	// codec does not implement (none, point-wise).
	ResultUnsupportedCompressorType

	// ResultUnsupportedPointFormat indicates a point format id with no item
	// layout.
	ResultUnsupportedPointFormat

	// ResultIOError indicates any stream failure, whatever the backing resource.
	ResultIOError

	// ResultMissingChunkTable indicates the stream has no usable chunk table
	// while the session needs one.
	ResultMissingChunkTable

	// ResultOther is the catch-all for everything not categorized above,
	// including contained panics.
	ResultOther
)

// String returns the C enum name of the result.
func (r Result) String() string {
	switch r {
	case ResultOK:
		return "LAZRS_OK"
	case ResultUnknownLazItem:
		return "LAZRS_UNKNOWN_LAZ_ITEM"
	case ResultUnknownLazItemVersion:
		return "LAZRS_UNKNOWN_LAZ_ITEM_VERSION"
	case ResultUnknownCompressorType:
		return "LAZRS_UNKNOWN_COMPRESSOR_TYPE"
	case ResultUnsupportedCompressorType:
		return "LAZRS_UNSUPPORTED_COMPRESSOR_TYPE"
	case ResultUnsupportedPointFormat:
		return "LAZRS_UNSUPPORTED_POINT_FORMAT"
	case ResultIOError:
		return "LAZRS_IO_ERROR"
	case ResultMissingChunkTable:
		return "LAZRS_MISSING_CHUNK_TABLE"
	case ResultOther:
		return "LAZRS_OTHER"
	default:
		return "LAZRS_UNKNOWN_RESULT"
	}
}

// IsValid reports whether r is one of the nine documented codes.
func (r Result) IsValid() bool {
	return r <= ResultOther
}
