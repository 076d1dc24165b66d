// Copyright 2024-2026 The Enumpack Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package enumpack

import "fmt"

// A DecodeError reports that a packed integer doesn't decode to any variant
// of a sum type: its tag falls outside the type's declared variants and
// doesn't match any pinned value. Encoding never fails, so this is the only
// error the generated code produces.
//
// Generated FromNum functions return errors that can be cast to *DecodeError
// using the standard library's errors.As.
type DecodeError struct {
	code     Code
	typeName string
	num      uint64
	tag      uint64
}

// NewDecodeError builds the error returned by generated FromNum functions
// when no variant matches. It's exported for generated code; there's rarely a
// reason to call it directly.
func NewDecodeError(typeName string, num, tag uint64) *DecodeError {
	return &DecodeError{code: CodeOutOfRangeTag, typeName: typeName, num: num, tag: tag}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("enumpack: decode %s: %s: tag %d of %#x matches no variant", e.typeName, e.code, e.tag, e.num)
}

// Code classifies the failure. Today it's always CodeOutOfRangeTag.
func (e *DecodeError) Code() Code {
	return e.code
}

// TypeName returns the name of the sum type the decode was attempted against.
func (e *DecodeError) TypeName() string {
	return e.typeName
}

// Num returns the packed integer that failed to decode.
func (e *DecodeError) Num() uint64 {
	return e.num
}

// Tag returns the out-of-range tag extracted from the packed integer.
func (e *DecodeError) Tag() uint64 {
	return e.tag
}
