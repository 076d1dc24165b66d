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

package sample

//go:generate go run enumpack.dev/enumpack/cmd/enumpack-gen -type Opcode -output opcode_enumpack.go

// An Opcode is a toy machine instruction. Halt pins its encoded value so the
// codec stays compatible with an older single-byte format.
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
