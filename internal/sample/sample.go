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

// Package sample declares the sum types that exercise the derived codecs in
// tests. The *_enumpack.go files are checked-in generator output.
package sample

//go:generate go run enumpack.dev/enumpack/cmd/enumpack-gen -type Signal,Phase

// A Signal is either a bare acknowledgement or a sequence number.
type Signal interface{ isSignal() }

// Ack acknowledges the previous frame.
type Ack struct{}

func (Ack) isSignal() {}

// Seq carries a frame sequence number.
type Seq struct{ N uint64 }

func (Seq) isSignal() {}

// A Phase tracks a job through its lifecycle.
type Phase interface{ isPhase() }

type Idle struct{}

func (Idle) isPhase() {}

type Running struct{}

func (Running) isPhase() {}

type Done struct{}

func (Done) isPhase() {}
