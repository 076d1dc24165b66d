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

// A Code classifies decode failures. Encoding never fails and decoding fails
// only when no variant matches, so there's a single code today; callers
// switching on it stay correct if later versions add more.
type Code uint32

// CodeOutOfRangeTag means the integer's tag bits (or, for pinned variants,
// its complete value) match no variant of the target type.
const CodeOutOfRangeTag Code = 1

func (c Code) String() string {
	if c == CodeOutOfRangeTag {
		return "out_of_range_tag"
	}
	return fmt.Sprintf("code_%d", uint32(c))
}
