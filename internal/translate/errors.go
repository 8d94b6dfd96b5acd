// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistentSchema indicates a model that reached a path the front end
	// should have ruled out, such as an unmapped scalar kind.
	ErrInconsistentSchema = errors.New("inconsistent schema")

	// ErrWriteFailed indicates the generated file could not be written.
	ErrWriteFailed = errors.New("failed to write generated file")
)

// InconsistencyError carries the message of an internal assertion.
type InconsistencyError struct {
	Msg string
}

func (e *InconsistencyError) Error() string { return e.Msg }

func (e *InconsistencyError) Unwrap() error { return ErrInconsistentSchema }

// Inconsistent aborts generation. Emission code calls it on paths a valid
// model never reaches; Recover turns it into an error at the translator
// boundary.
func Inconsistent(format string, args ...any) {
	panic(&InconsistencyError{Msg: fmt.Sprintf(format, args...)})
}

// Recover converts a panic raised by Inconsistent into *errp. Other panics
// are re-raised. Use as: defer translate.Recover(&err).
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*InconsistencyError); ok {
		*errp = fmt.Errorf("%w: %s", ErrInconsistentSchema, ie.Msg)
		return
	}
	panic(r)
}
