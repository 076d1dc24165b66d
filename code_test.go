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

import (
	"testing"

	"enumpack.dev/enumpack/internal/assert"
)

func TestCodeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, CodeOutOfRangeTag.String(), "out_of_range_tag")
	// Unknown codes stringify to something greppable rather than panicking.
	assert.Equal(t, Code(42).String(), "code_42")
}
