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

// Package deriver analyzes Go sum types and derives their integer codecs.
//
// A sum type is a sealed interface: an interface declaring a single
// unexported, niladic marker method, together with the struct types in the
// same package that implement it with value receivers. Each variant struct
// carries either no fields (a unit variant) or exactly one unsigned integer
// field (a payload variant). Variant order is declaration order.
//
// Analyze builds an Enum description from a type-checked package; Generate
// renders the ToNum/FromNum source for one or more descriptions. The
// cmd/enumpack-gen command wires the two together behind go generate.
package deriver

// An Enum describes one sum type and the bit layout of its packed integer
// form. Positional variants come first, in declaration order; pinned
// variants follow.
type Enum struct {
	// Name is the sealed interface's name.
	Name string
	// Start is the tag of the first positional variant. Later positional
	// variants count up from it.
	Start uint64
	// TagWidth is the number of low-order bits that hold a positional tag,
	// enough to distinguish every tag from Start through the last positional
	// variant's. Zero when a single variant (or none) needs distinguishing.
	TagWidth int
	// Variants holds the positional variants in tag order, then the pinned
	// variants in declaration order.
	Variants []Variant
}

// A Variant describes one struct type implementing the sum type's marker
// method.
type Variant struct {
	// Name is the variant struct's type name.
	Name string
	// Tag is the variant's position among the positional variants, offset by
	// the enum's Start. For pinned variants it is instead the complete packed
	// value: pinned variants encode to exactly Tag and are matched by full
	// equality during decode, after positional tag matching.
	Tag uint64
	// Pinned marks a variant carrying an enumpack:pin directive.
	Pinned bool
	// Payload is nil for unit variants.
	Payload *Payload
}

// A Payload describes a variant's single unsigned integer field. The field's
// value occupies the high-order bits of the packed integer, shifted left past
// the tag; bits that don't fit below bit 64 are discarded when encoding.
type Payload struct {
	// Field is the struct field's name.
	Field string
	// Type is the field's Go type as written in the variant's package. Its
	// underlying type is always an unsigned integer type.
	Type string
}

// hasPayload reports whether any variant carries a payload, which decides
// whether the generated decode binds the unpacked payload value.
func (e *Enum) hasPayload() bool {
	for _, v := range e.Variants {
		if v.Payload != nil {
			return true
		}
	}
	return false
}

// positional returns the number of non-pinned variants.
func (e *Enum) positional() int {
	n := 0
	for _, v := range e.Variants {
		if !v.Pinned {
			n++
		}
	}
	return n
}
