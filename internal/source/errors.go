package source

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	ErrIO         = errors.New("io failure")
	ErrDecode     = errors.New("decode failure")
	ErrBackground = errors.New("background task failure")

	errEmptyImage = errors.New("image has no pixels")
)

// Error describes a failed operation on one location.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(path string, err error) error {
	return &Error{Kind: ErrIO, Path: path, Err: err}
}

func decodeError(path string, err error) error {
	return &Error{Kind: ErrDecode, Path: path, Err: err}
}

func backgroundError(path string, err error) error {
	return &Error{Kind: ErrBackground, Path: path, Err: err}
}
