// Copyright 2024 The rdfc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rdfc

import "fmt"

// Code classifies an Error. The core algorithm recognizes two error
// kinds (malformed input, internal invariant violation); the facade
// adds a third for rejected Options.
type Code string

const (
	// ErrMalformedInput marks malformed user-supplied input: an
	// invalid N-Quads line (Decode) or an unsupported Cayley quad
	// (FromCayleyQuads).
	ErrMalformedInput Code = "malformed input"
	// ErrInternalInvariant marks a bug in the canonicalizer itself,
	// such as a blank node that reached the end of the driver without
	// ever being issued a canonical label. Never reached on a
	// conformant execution. Digest also reports a failed multibase
	// encoding with this code.
	ErrInternalInvariant Code = "internal invariant violation"
	// ErrInvalidOptions marks a rejected Options value (see
	// Options.Validate).
	ErrInvalidOptions Code = "invalid options"
)

// Error is this package's error type. Grounded on ld/errors.go's
// JsonLdError, renamed to this module's vocabulary and extended with
// Unwrap so callers can use errors.Is/errors.As against a wrapped
// decoder error.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// NewError creates an *Error with the given code, message and
// (possibly nil) underlying cause.
func NewError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the error's underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}
