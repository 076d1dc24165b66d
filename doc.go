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

// Package enumpack derives integer codecs for Go sum types. A sum type is a
// sealed interface (an interface with a single unexported, niladic marker
// method) together with the struct types in the same package that implement
// it. Each variant struct carries either no fields or exactly one unsigned
// integer field.
//
// For each sum type, the generators in cmd/enumpack-gen and
// cmd/protoc-gen-enumpack-go emit a ToNum method on every variant and a
// FromNum function next to the type. ToNum packs the variant's declaration
// index (its tag) into the low-order bits of a uint64 and the payload, if
// any, into the remaining high-order bits. FromNum reverses the packing.
// Payload bits shifted past bit 63 are silently discarded; callers that need
// full 64-bit payloads should reserve types with a single variant, which
// needs no tag bits at all.
//
// This package is the small runtime the generated code calls into. Most
// users only interact with the generated ToNum and FromNum surface.
package enumpack
