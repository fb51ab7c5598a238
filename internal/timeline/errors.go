package timeline

import "errors"

var ErrInvalidDate = errors.New("invalid date")
