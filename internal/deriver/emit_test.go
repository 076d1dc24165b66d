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
	"go/format"
	"strings"
	"testing"

	"enumpack.dev/enumpack/internal/assert"
)

const signalSource = `package signals

type Signal interface{ isSignal() }

type Ack struct{}

func (Ack) isSignal() {}

type Seq struct{ N uint64 }

func (Seq) isSignal() {}
`

func TestGenerateSignal(t *testing.T) {
	t.Parallel()
	src := generate(t, signalSource, "Signal", 0)
	assertContainsAll(t, src,
		"// Code generated by enumpack-gen. DO NOT EDIT.",
		"package signals",
		`"enumpack.dev/enumpack"`,
		"const _ = enumpack.IsAtLeastVersion0_1_0",
		"const signalTagWidth = 1",
		"func (Ack) ToNum() uint64 {",
		"return enumpack.Pack(0, 0, signalTagWidth)",
		"func (v Seq) ToNum() uint64 {",
		"return enumpack.Pack(1, uint64(v.N), signalTagWidth)",
		"func SignalFromNum(num uint64) (Signal, error) {",
		"tag, payload := enumpack.Unpack(num, signalTagWidth)",
		"return Seq{N: payload}, nil",
		`return nil, enumpack.NewDecodeError("Signal", num, tag)`,
		"func MustSignalFromNum(num uint64) Signal {",
	)
}

func TestGenerateUnitOnly(t *testing.T) {
	t.Parallel()
	src := generate(t, `package phases

type Phase interface{ isPhase() }

type Idle struct{}

func (Idle) isPhase() {}

type Running struct{}

func (Running) isPhase() {}

type Done struct{}

func (Done) isPhase() {}
`, "Phase", 0)
	// No payload variant, so the unpacked payload is discarded rather than
	// bound to an unused variable.
	assertContainsAll(t, src,
		"const phaseTagWidth = 2",
		"tag, _ := enumpack.Unpack(num, phaseTagWidth)",
		"return Done{}, nil",
	)
	assert.False(t, strings.Contains(src, "tag, payload"))
}

func TestGeneratePinned(t *testing.T) {
	t.Parallel()
	src := generate(t, `package ops

type Opcode interface{ isOpcode() }

type Nop struct{}

func (Nop) isOpcode() {}

type Read struct{ Addr uint16 }

func (Read) isOpcode() {}

type Write struct{ Addr uint16 }

func (Write) isOpcode() {}

//enumpack:pin=0xff
type Halt struct{}

func (Halt) isOpcode() {}
`, "Opcode", 0)
	assertContainsAll(t, src,
		"const opcodeTagWidth = 2",
		"return 255 // pinned",
		"return Read{Addr: uint16(payload)}, nil",
		"switch num {",
		"case 255:",
		"return Halt{}, nil",
	)
}

func TestGenerateIsFormatted(t *testing.T) {
	t.Parallel()
	src := generate(t, signalSource, "Signal", 0)
	formatted, err := format.Source([]byte(src))
	assert.Nil(t, err)
	assert.Equal(t, string(formatted), src)
}

func TestGenerateMultipleEnums(t *testing.T) {
	t.Parallel()
	pkg, files := typecheck(t, signalSource+`
type Flag interface{ isFlag() }

type Off struct{}

func (Off) isFlag() {}

type On struct{}

func (On) isFlag() {}
`)
	var enums []*Enum
	for _, name := range []string{"Signal", "Flag"} {
		enum, err := Analyze(pkg, files, name, 0)
		if err != nil {
			t.Fatal(err)
		}
		enums = append(enums, enum)
	}
	out, err := Generate("enumpack-gen", pkg.Name(), pkg.Path(), enums)
	assert.Nil(t, err)
	assertContainsAll(t, string(out),
		"func SignalFromNum(num uint64) (Signal, error) {",
		"func FlagFromNum(num uint64) (Flag, error) {",
		"const flagTagWidth = 1",
	)
}

func generate(t *testing.T, source, name string, start uint64) string {
	t.Helper()
	pkg, files := typecheck(t, source)
	enum, err := Analyze(pkg, files, name, start)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Generate("enumpack-gen", pkg.Name(), pkg.Path(), []*Enum{enum})
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func assertContainsAll(t *testing.T, src string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		assert.True(t, strings.Contains(src, want), assert.Sprintf("generated code missing %q:\n%s", want, src))
	}
}
