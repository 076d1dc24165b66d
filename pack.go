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

import "math/bits"

// TagWidth returns the minimum number of low-order bits needed to distinguish
// n tag values, ceil(log2(n)). A type with a single variant needs no tag bits:
// zero bits already identify exactly one value. The generators call this once
// per sum type and bake the result into the generated code.
func TagWidth(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Pack combines a variant tag and its payload into a single uint64. The tag
// occupies the low-order width bits and the payload the remaining high-order
// bits, so unpacking the tag is a mask rather than a shift against an unknown
// total width. Payload bits that don't fit below bit 64 are silently
// discarded.
func Pack(tag, payload uint64, width int) uint64 {
	return payload<<width | tag
}

// Unpack splits a packed uint64 into its tag and payload. It assumes, and
// does not verify, that num was produced by Pack with the same width; range
// checking the tag is the generated FromNum function's job, since only it
// knows the variant count.
func Unpack(num uint64, width int) (tag, payload uint64) {
	mask := uint64(1)<<width - 1
	return num & mask, num >> width
}
