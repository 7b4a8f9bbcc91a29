package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")
	ErrInvalidConfig = goerr.New("invalid config")

	ErrBodyOverflow      = goerr.New("overflow")
	ErrSignatureMissing  = goerr.New("signature header missing")
	ErrSignatureMismatch = goerr.New("signature mismatch")
)
