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

package deriver

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"math"
	"testing"

	"enumpack.dev/enumpack/internal/assert"
)

func TestAnalyzeDeclarationOrder(t *testing.T) {
	t.Parallel()
	enum := analyze(t, `package phases

type Phase interface{ isPhase() }

type Idle struct{}

func (Idle) isPhase() {}

type Running struct{}

func (Running) isPhase() {}

type Done struct{}

func (Done) isPhase() {}
`, "Phase", 0)
	assert.Equal(t, enum.TagWidth, 2)
	assert.Equal(t, enum.Variants, []Variant{
		{Name: "Idle", Tag: 0},
		{Name: "Running", Tag: 1},
		{Name: "Done", Tag: 2},
	})
}

func TestAnalyzePayloadVariant(t *testing.T) {
	t.Parallel()
	enum := analyze(t, `package signals

type Signal interface{ isSignal() }

type Ack struct{}

func (Ack) isSignal() {}

type Seq struct{ N uint64 }

func (Seq) isSignal() {}
`, "Signal", 0)
	assert.Equal(t, enum.TagWidth, 1)
	assert.Equal(t, enum.Variants, []Variant{
		{Name: "Ack", Tag: 0},
		{Name: "Seq", Tag: 1, Payload: &Payload{Field: "N", Type: "uint64"}},
	})
}

func TestAnalyzeNamedPayloadType(t *testing.T) {
	t.Parallel()
	enum := analyze(t, `package ids

type ID uint16

type Key interface{ isKey() }

type Local struct{ Value ID }

func (Local) isKey() {}

type Global struct{}

func (Global) isKey() {}
`, "Key", 0)
	assert.Equal(t, enum.Variants[0].Payload, &Payload{Field: "Value", Type: "ID"})
}

func TestAnalyzeSingleVariantNeedsNoTagBits(t *testing.T) {
	t.Parallel()
	enum := analyze(t, `package solo

type Only interface{ isOnly() }

type Value struct{ N uint64 }

func (Value) isOnly() {}
`, "Only", 0)
	assert.Equal(t, enum.TagWidth, 0)
	assert.Equal(t, enum.Variants[0].Tag, uint64(0))
}

func TestAnalyzeStartOffset(t *testing.T) {
	t.Parallel()
	enum := analyze(t, `package statuses

type Status interface{ isStatus() }

type OK struct{}

func (OK) isStatus() {}

type Failed struct{}

func (Failed) isStatus() {}
`, "Status", 4)
	assert.Equal(t, enum.Start, uint64(4))
	assert.Equal(t, enum.TagWidth, 3)
	assert.Equal(t, enum.Variants[0].Tag, uint64(4))
	assert.Equal(t, enum.Variants[1].Tag, uint64(5))
}

func TestAnalyzePinnedVariant(t *testing.T) {
	t.Parallel()
	enum := analyze(t, `package ops

type Opcode interface{ isOpcode() }

//enumpack:pin=0xff
type Halt struct{}

func (Halt) isOpcode() {}

type Nop struct{}

func (Nop) isOpcode() {}

type Read struct{ Addr uint16 }

func (Read) isOpcode() {}

type Write struct{ Addr uint16 }

func (Write) isOpcode() {}
`, "Opcode", 0)
	// Three positional variants need two tag bits; the pinned variant is
	// ordered last regardless of where it's declared and doesn't widen the
	// tag.
	assert.Equal(t, enum.TagWidth, 2)
	assert.Equal(t, enum.Variants, []Variant{
		{Name: "Nop", Tag: 0},
		{Name: "Read", Tag: 1, Payload: &Payload{Field: "Addr", Type: "uint16"}},
		{Name: "Write", Tag: 2, Payload: &Payload{Field: "Addr", Type: "uint16"}},
		{Name: "Halt", Tag: 0xff, Pinned: true},
	})
}

func TestAnalyzeStartOverflow(t *testing.T) {
	t.Parallel()
	src := `package statuses

type Status interface{ isStatus() }

type OK struct{}

func (OK) isStatus() {}

type Failed struct{}

func (Failed) isStatus() {}
`
	pkg, files := typecheck(t, src)
	// The second tag would be MaxUint64+1, wrapping back to zero.
	_, err := Analyze(pkg, files, "Status", math.MaxUint64)
	assert.NotNil(t, err)
	assert.Match(t, err.Error(), `leaves no room for 2 positional variants`)

	// The last representable start still works.
	enum, err := Analyze(pkg, files, "Status", math.MaxUint64-1)
	assert.Nil(t, err)
	assert.Equal(t, enum.Variants[1].Tag, uint64(math.MaxUint64))
}

func TestAnalyzeRejections(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		src     string
		typ     string
		wantErr string
	}{
		{
			name: "multiple_payload_fields",
			src: `package bad

type Sum interface{ isSum() }

type Two struct{ A, B uint32 }

func (Two) isSum() {}
`,
			typ:     "Sum",
			wantErr: `at most one payload field`,
		},
		{
			name: "signed_payload",
			src: `package bad

type Sum interface{ isSum() }

type Signed struct{ N int64 }

func (Signed) isSum() {}
`,
			typ:     "Sum",
			wantErr: `must have an unsigned integer type`,
		},
		{
			name: "pointer_receiver",
			src: `package bad

type Sum interface{ isSum() }

type Ptr struct{}

func (*Ptr) isSum() {}
`,
			typ:     "Sum",
			wantErr: `pointer receiver`,
		},
		{
			name: "pinned_payload",
			src: `package bad

type Sum interface{ isSum() }

//enumpack:pin=9
type Pinned struct{ N uint8 }

func (Pinned) isSum() {}
`,
			typ:     "Sum",
			wantErr: `pinned variants cannot carry a payload`,
		},
		{
			name: "shadowed_pin",
			src: `package bad

type Sum interface{ isSum() }

type A struct{}

func (A) isSum() {}

type B struct{}

func (B) isSum() {}

//enumpack:pin=3
type C struct{}

func (C) isSum() {}
`,
			typ: "Sum",
			// Two positional tags use one bit; pin 3 has low bit 1, which
			// positional matching claims first.
			wantErr: `shadowed by positional tag 1`,
		},
		{
			name: "duplicate_pin",
			src: `package bad

type Sum interface{ isSum() }

type A struct{}

func (A) isSum() {}

type B struct{}

func (B) isSum() {}

type C struct{}

func (C) isSum() {}

//enumpack:pin=7
type D struct{}

func (D) isSum() {}

//enumpack:pin=7
type E struct{}

func (E) isSum() {}
`,
			typ:     "Sum",
			wantErr: `pin 7 already used`,
		},
		{
			name: "malformed_pin",
			src: `package bad

type Sum interface{ isSum() }

//enumpack:pin=banana
type A struct{}

func (A) isSum() {}
`,
			typ:     "Sum",
			wantErr: `malformed`,
		},
		{
			name: "no_variants",
			src: `package bad

type Sum interface{ isSum() }
`,
			typ:     "Sum",
			wantErr: `has no variants`,
		},
		{
			name: "exported_marker",
			src: `package bad

type Sum interface{ IsSum() }

type A struct{}

func (A) IsSum() {}
`,
			typ:     "Sum",
			wantErr: `must be unexported`,
		},
		{
			name: "marker_with_results",
			src: `package bad

type Sum interface{ isSum() bool }

type A struct{}

func (A) isSum() bool { return true }
`,
			typ:     "Sum",
			wantErr: `take and return nothing`,
		},
		{
			name: "two_methods",
			src: `package bad

type Sum interface {
	isSum()
	alsoSum()
}
`,
			typ:     "Sum",
			wantErr: `exactly one marker method`,
		},
		{
			name: "not_an_interface",
			src: `package bad

type Sum struct{}
`,
			typ:     "Sum",
			wantErr: `must be an interface`,
		},
		{
			name: "unknown_type",
			src: `package bad

type Sum interface{ isSum() }
`,
			typ:     "Missing",
			wantErr: `no type named Missing`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pkg, files := typecheck(t, tt.src)
			_, err := Analyze(pkg, files, tt.typ, 0)
			assert.NotNil(t, err)
			assert.Match(t, err.Error(), tt.wantErr)
		})
	}
}

func analyze(t *testing.T, src, name string, start uint64) *Enum {
	t.Helper()
	pkg, files := typecheck(t, src)
	enum, err := Analyze(pkg, files, name, start)
	if err != nil {
		t.Fatal(err)
	}
	return enum
}

func typecheck(t *testing.T, src string) (*types.Package, []*ast.File) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "variants.go", src, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}
	config := types.Config{}
	pkg, err := config.Check("example.com/variants", fset, []*ast.File{file}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return pkg, []*ast.File{file}
}
