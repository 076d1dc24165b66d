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

// Version is the semantic version of the enumpack module.
const Version = "0.1.0"

// These constants are used in compile-time handshakes with enumpack's
// generated code.
const IsAtLeastVersion0_1_0 = true

// Enum is implemented by every variant of a derived sum type. The generated
// ToNum method packs the variant's tag and optional payload into a single
// uint64; the generated FromNum function next to each sum type reverses it.
type Enum interface {
	ToNum() uint64
}
