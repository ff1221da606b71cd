package tensor

import "errors"

// ErrDataLength is returned when caller data does not fill a shape exactly.
var ErrDataLength = errors.New("tensor: data length does not match shape")
