// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package erm

import "fmt"

// Class discriminates provider errors
type Class int

// Error classes, see package documentation
const (
	None Class = iota
	Authorization
	NotFound
	Malformed
	Transient
	Canceled
	Other
)

func (c Class) String() string {
	switch c {
	case None:
		return "none"
	case Authorization:
		return "authorization"
	case NotFound:
		return "not_found"
	case Malformed:
		return "malformed"
	case Transient:
		return "transient"
	case Canceled:
		return "canceled"
	}
	return "other"
}

// ClassifiedError carries an explicit class, it wins over any other classification rule
type ClassifiedError struct {
	Class Class
	Op    string
	Err   error
}

func (e *ClassifiedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Class)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Class, e.Err)
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// New wraps err with an explicit class
func New(class Class, op string, err error) error {
	return &ClassifiedError{Class: class, Op: op, Err: err}
}
