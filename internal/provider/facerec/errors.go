package facerec

import "errors"

var (
	ErrEncoderUnavailable = errors.New("encoder service unavailable")
	ErrEncoderTimeout     = errors.New("encoder request timeout")
	ErrInvalidResponse    = errors.New("invalid response from encoder")
)
