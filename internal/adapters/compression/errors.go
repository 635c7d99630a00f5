package compression

import "errors"

var errClosed = errors.New("compression: coder is closed")
