package service

import "errors"

var (
	// ErrInvalidArgument reports a negative count or a value outside its
	// enumerated set.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound reports an identifier absent from the session dataset.
	ErrNotFound = errors.New("not found")
)
