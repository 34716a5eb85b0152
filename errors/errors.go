// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package errors

import "errors"

var (
	// ErrNotExist the requested object does not exist
	ErrNotExist = errors.New("the object does not exist")
	// ErrExist the object already exists
	ErrExist = errors.New("the object already exists")
	// ErrInvalid a parameter or the request is invalid
	ErrInvalid = errors.New("invalid parameter value")
	// ErrInternal an unexpected internal state, normally indicates a bug
	ErrInternal = errors.New("internal error")
	// ErrExhausted a resource or a capacity limit is reached
	ErrExhausted = errors.New("the resource is exhausted")
	// ErrClosed the object is closed and cannot be used anymore
	ErrClosed = errors.New("the object is closed")
	// ErrCanceled the operation is canceled
	ErrCanceled = errors.New("the operation is canceled")
	// ErrUnimplemented the operation is not implemented
	ErrUnimplemented = errors.New("the operation is not implemented")
)

// New returns the error with the text provided. It is here to avoid the
// extra import of the standard errors package by the dependent code.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in the err's tree matches the target. The
// function should be used for testing errors against the variables above:
//
//	errors.Is(err, errors.ErrNotExist)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
