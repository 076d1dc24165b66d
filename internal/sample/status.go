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

//go:generate go run enumpack.dev/enumpack/cmd/enumpack-gen -type Status -start 4 -output status_enumpack.go

// A Status reports how a job ended. Tags start at 4 to stay clear of the
// codes an earlier protocol revision reserved.
type Status interface{ isStatus() }

type Succeeded struct{}

func (Succeeded) isStatus() {}

type Failed struct{ Code uint8 }

func (Failed) isStatus() {}
