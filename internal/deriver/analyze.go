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
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"math"
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

// pinDirective pins a unit variant's complete encoded value, e.g.
//
//	//enumpack:pin=0xff
//	type OpHalt struct{}
//
// Pinned variants are matched by full equality during decode, after
// positional tag matching, and are ordered after positional variants.
const pinDirective = "//enumpack:pin="

// Analyze derives the codec description for the sum type name declared in the
// type-checked package pkg. The package's parsed files supply the
// enumpack:pin directive comments; they must belong to the same package.
// Positional variants are assigned tags start, start+1, and so on in
// declaration order.
//
// Analyze rejects shapes the packing scheme has no provision for: variants
// with more than one field, payload fields that aren't unsigned integers,
// pinned variants carrying a payload, and pinned values that positional tag
// matching would shadow.
func Analyze(pkg *types.Package, files []*ast.File, name string, start uint64) (*Enum, error) {
	typeName, iface, err := lookupSumType(pkg, name)
	if err != nil {
		return nil, err
	}
	pins, err := pinDirectives(files)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		variant Variant
		pos     token.Pos
	}
	var candidates []candidate
	scope := pkg.Scope()
	for _, objName := range scope.Names() {
		tn, ok := scope.Lookup(objName).(*types.TypeName)
		if !ok || tn == typeName || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok || named.TypeParams() != nil {
			continue
		}
		if !types.Implements(named, iface) {
			if types.Implements(types.NewPointer(named), iface) {
				return nil, fmt.Errorf("variant %s of %s is implemented with a pointer receiver; use a value receiver", objName, name)
			}
			continue
		}
		variant, err := newVariant(pkg, name, objName, named, pins)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{variant: variant, pos: tn.Pos()})
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("sum type %s has no variants", name)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].pos < candidates[j].pos
	})

	enum := &Enum{Name: name, Start: start}
	var positional int
	for _, c := range candidates {
		if !c.variant.Pinned {
			positional++
		}
	}
	// Tags run from start to start+positional-1; past MaxUint64 they'd wrap
	// and collide.
	if positional > 0 && start > math.MaxUint64-uint64(positional-1) {
		return nil, fmt.Errorf(
			"sum type %s: start %d leaves no room for %d positional variants",
			name, start, positional,
		)
	}
	var pinned []Variant
	for _, c := range candidates {
		if c.variant.Pinned {
			pinned = append(pinned, c.variant)
			continue
		}
		c.variant.Tag = start + uint64(len(enum.Variants))
		enum.Variants = append(enum.Variants, c.variant)
	}
	if n := len(enum.Variants); n > 0 && (start > 0 || n > 1) {
		enum.TagWidth = bits.Len64(start + uint64(n) - 1)
	}
	if err := checkPins(enum, pinned); err != nil {
		return nil, err
	}
	enum.Variants = append(enum.Variants, pinned...)
	return enum, nil
}

func lookupSumType(pkg *types.Package, name string) (*types.TypeName, *types.Interface, error) {
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		return nil, nil, fmt.Errorf("no type named %s in package %s", name, pkg.Path())
	}
	typeName, ok := obj.(*types.TypeName)
	if !ok {
		return nil, nil, fmt.Errorf("%s is not a type", name)
	}
	iface, ok := typeName.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, nil, fmt.Errorf("sum type %s must be an interface", name)
	}
	if iface.NumMethods() != 1 {
		return nil, nil, fmt.Errorf("sum type %s must declare exactly one marker method, found %d", name, iface.NumMethods())
	}
	marker := iface.Method(0)
	if marker.Exported() {
		return nil, nil, fmt.Errorf("sum type %s: marker method %s must be unexported to seal the type", name, marker.Name())
	}
	if sig, ok := marker.Type().(*types.Signature); ok && (sig.Params().Len() != 0 || sig.Results().Len() != 0) {
		return nil, nil, fmt.Errorf("sum type %s: marker method %s must take and return nothing", name, marker.Name())
	}
	return typeName, iface, nil
}

func newVariant(pkg *types.Package, enumName, name string, named *types.Named, pins map[string]uint64) (Variant, error) {
	structType, ok := named.Underlying().(*types.Struct)
	if !ok {
		return Variant{}, fmt.Errorf("variant %s of %s must be a struct type", name, enumName)
	}
	variant := Variant{Name: name}
	switch structType.NumFields() {
	case 0:
	case 1:
		field := structType.Field(0)
		basic, ok := field.Type().Underlying().(*types.Basic)
		if !ok || basic.Info()&types.IsUnsigned == 0 {
			return Variant{}, fmt.Errorf(
				"variant %s of %s: payload field %s must have an unsigned integer type, not %s",
				name, enumName, field.Name(), field.Type(),
			)
		}
		variant.Payload = &Payload{
			Field: field.Name(),
			Type:  types.TypeString(field.Type(), types.RelativeTo(pkg)),
		}
	default:
		return Variant{}, fmt.Errorf(
			"variant %s of %s has %d fields; variants carry at most one payload field",
			name, enumName, structType.NumFields(),
		)
	}
	if pin, ok := pins[name]; ok {
		if variant.Payload != nil {
			return Variant{}, fmt.Errorf("variant %s of %s: pinned variants cannot carry a payload", name, enumName)
		}
		variant.Tag = pin
		variant.Pinned = true
	}
	return variant, nil
}

// checkPins rejects pinned values that decoding could never reach: decode
// matches positional tags by mask before comparing pins, so a pin whose
// low-order bits land in the positional tag range is shadowed.
func checkPins(enum *Enum, pinned []Variant) error {
	seen := make(map[uint64]string, len(pinned))
	mask := uint64(1)<<enum.TagWidth - 1
	for _, v := range pinned {
		if prev, ok := seen[v.Tag]; ok {
			return fmt.Errorf("variant %s of %s: pin %d already used by %s", v.Name, enum.Name, v.Tag, prev)
		}
		seen[v.Tag] = v.Name
		if n := len(enum.Variants); n > 0 {
			if low := v.Tag & mask; low >= enum.Start && low < enum.Start+uint64(n) {
				return fmt.Errorf(
					"variant %s of %s: pin %d is shadowed by positional tag %d and would never decode",
					v.Name, enum.Name, v.Tag, low,
				)
			}
		}
	}
	return nil
}

// pinDirectives collects enumpack:pin directives from type declaration doc
// comments, keyed by type name.
func pinDirectives(files []*ast.File) (map[string]uint64, error) {
	pins := make(map[string]uint64)
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := typeSpec.Doc
				if doc == nil && len(genDecl.Specs) == 1 {
					doc = genDecl.Doc
				}
				if doc == nil {
					continue
				}
				for _, comment := range doc.List {
					if !strings.HasPrefix(comment.Text, pinDirective) {
						continue
					}
					value := strings.TrimSpace(strings.TrimPrefix(comment.Text, pinDirective))
					pin, err := strconv.ParseUint(value, 0, 64)
					if err != nil {
						return nil, fmt.Errorf("type %s: malformed %s%s: %w", typeSpec.Name.Name, pinDirective, value, err)
					}
					pins[typeSpec.Name.Name] = pin
				}
			}
		}
	}
	return pins, nil
}
