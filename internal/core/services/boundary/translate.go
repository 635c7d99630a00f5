package boundary

import (
	"errors"
	"io"
	"io/fs"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/internal/laz"
	pkgerrors "github.com/iamNilotpal/lazrs/pkg/errors"
)

// Translate maps any error to the result code reported across the boundary.
// It is total: errors it does not recognize become ResultOther.
func Translate(err error) domain.Result {
	if err == nil {
		return domain.ResultOK
	}

	if kind, ok := laz.KindOf(err); ok {
		switch kind {
		case laz.KindUnknownLazItem:
			return domain.ResultUnknownLazItem
		case laz.KindUnsupportedLazItemVersion:
			return domain.ResultUnknownLazItemVersion
		case laz.KindUnknownCompressorType:
			return domain.ResultUnknownCompressorType
		case laz.KindUnsupportedCompressorType:
			return domain.ResultUnsupportedCompressorType
		case laz.KindUnsupportedPointFormat:
			return domain.ResultUnsupportedPointFormat
		case laz.KindIo:
			return domain.ResultIOError
		case laz.KindMissingChunkTable:
			return domain.ResultMissingChunkTable
		default:
			return domain.ResultOther
		}
	}

	var pathErr *fs.PathError
	if pkgerrors.IsIOError(err) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.As(err, &pathErr) {
		return domain.ResultIOError
	}

	return domain.ResultOther
}
