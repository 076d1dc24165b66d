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
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode/utf8"
)

const (
	// runtimePackage is the import path of the runtime the generated code
	// calls into.
	runtimePackage = "enumpack.dev/enumpack"

	commentWidth = 97 // leave room for "// "
)

// Generate renders the codec source for the given sum types as one gofmt'd
// file in package packageName. toolName and sourceID only appear in the
// generated file's preamble.
func Generate(toolName, packageName, sourceID string, enums []*Enum) ([]byte, error) {
	g := &generatedFile{}
	g.P("// Code generated by ", toolName, ". DO NOT EDIT.")
	g.P("//")
	g.P("// Source: ", sourceID)
	g.P()
	g.P("package ", packageName)
	g.P()
	g.P("import (")
	g.P(`"`, runtimePackage, `"`)
	g.P(")")
	g.P()
	g.wrapComments("This is a compile-time assertion to ensure that this generated file ",
		"and the enumpack package are compatible. If you get a compiler error that this constant ",
		"is not defined, this code was generated with a version of enumpack newer than the one ",
		"compiled into your binary. You can fix the problem by either regenerating this code ",
		"with an older version of enumpack or updating the enumpack version compiled into your binary.")
	g.P("const _ = enumpack.IsAtLeastVersion0_1_0")
	g.P()
	for _, enum := range enums {
		generateEnum(g, enum)
	}
	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code for package %s: %w", packageName, err)
	}
	return src, nil
}

func generateEnum(g *generatedFile, enum *Enum) {
	width := widthConstName(enum)
	g.wrapComments(width, " is the number of low-order bits of a packed integer that hold ",
		indefinite(enum.Name), " ", enum.Name,
		" variant's tag. The payload, if any, occupies the remaining high-order bits.")
	g.P("const ", width, " = ", enum.TagWidth)
	g.P()
	for _, variant := range enum.Variants {
		generateToNum(g, enum, variant)
	}
	generateFromNum(g, enum)
	generateMustFromNum(g, enum)
}

func generateToNum(g *generatedFile, enum *Enum, variant Variant) {
	g.P("// ToNum implements enumpack.Enum.")
	switch {
	case variant.Pinned:
		g.P("func (", variant.Name, ") ToNum() uint64 {")
		g.P("return ", variant.Tag, " // pinned")
	case variant.Payload != nil:
		g.P("func (v ", variant.Name, ") ToNum() uint64 {")
		g.P("return enumpack.Pack(", variant.Tag, ", uint64(v.", variant.Payload.Field, "), ", widthConstName(enum), ")")
	default:
		g.P("func (", variant.Name, ") ToNum() uint64 {")
		g.P("return enumpack.Pack(", variant.Tag, ", 0, ", widthConstName(enum), ")")
	}
	g.P("}")
	g.P()
}

func generateFromNum(g *generatedFile, enum *Enum) {
	g.wrapComments(enum.Name, "FromNum unpacks an integer produced by ToNum back into ",
		indefinite(enum.Name), " ", enum.Name,
		". Integers whose tag matches no declared variant are rejected with a *enumpack.DecodeError.")
	g.P("func ", enum.Name, "FromNum(num uint64) (", enum.Name, ", error) {")
	if enum.hasPayload() {
		g.P("tag, payload := enumpack.Unpack(num, ", widthConstName(enum), ")")
	} else {
		g.P("tag, _ := enumpack.Unpack(num, ", widthConstName(enum), ")")
	}
	if enum.positional() > 0 {
		g.P("switch tag {")
		for _, variant := range enum.Variants {
			if variant.Pinned {
				continue
			}
			g.P("case ", variant.Tag, ":")
			g.P("return ", constructExpr(variant), ", nil")
		}
		g.P("}")
	}
	if enum.positional() < len(enum.Variants) {
		g.P("switch num {")
		for _, variant := range enum.Variants {
			if !variant.Pinned {
				continue
			}
			g.P("case ", variant.Tag, ":")
			g.P("return ", variant.Name, "{}, nil")
		}
		g.P("}")
	}
	g.P(`return nil, enumpack.NewDecodeError("`, enum.Name, `", num, tag)`)
	g.P("}")
	g.P()
}

func generateMustFromNum(g *generatedFile, enum *Enum) {
	g.wrapComments("Must", enum.Name, "FromNum is like ", enum.Name, "FromNum, but panics when ",
		"num doesn't decode. Only feed it numbers produced by ToNum.")
	g.P("func Must", enum.Name, "FromNum(num uint64) ", enum.Name, " {")
	g.P("v, err := ", enum.Name, "FromNum(num)")
	g.P("if err != nil {")
	g.P("panic(err)")
	g.P("}")
	g.P("return v")
	g.P("}")
	g.P()
}

// constructExpr renders the composite literal that rebuilds a positional
// variant from the unpacked payload, converting to the declared field type.
// The conversion truncates high-order payload bits for narrow fields.
func constructExpr(variant Variant) string {
	if variant.Payload == nil {
		return variant.Name + "{}"
	}
	if variant.Payload.Type == "uint64" {
		return fmt.Sprintf("%s{%s: payload}", variant.Name, variant.Payload.Field)
	}
	return fmt.Sprintf("%s{%s: %s(payload)}", variant.Name, variant.Payload.Field, variant.Payload.Type)
}

func widthConstName(enum *Enum) string {
	return unexport(enum.Name) + "TagWidth"
}

func unexport(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}

// indefinite returns the article for noun in the generated doc comments. It
// only looks at the first letter, which is close enough for type names.
func indefinite(noun string) string {
	switch noun[0] {
	case 'A', 'E', 'I', 'O', 'U':
		return "an"
	default:
		return "a"
	}
}

// A generatedFile accumulates unformatted source; Generate runs the result
// through go/format before returning it.
type generatedFile struct {
	buf bytes.Buffer
}

// P prints its arguments followed by a newline, without spaces in between.
func (g *generatedFile) P(args ...any) {
	for _, arg := range args {
		fmt.Fprint(&g.buf, arg)
	}
	g.buf.WriteByte('\n')
}

// wrapComments joins elems into one string and prints it as a word-wrapped
// doc comment, so generated comments don't come out raggedy.
func (g *generatedFile) wrapComments(elems ...any) {
	text := &bytes.Buffer{}
	for _, el := range elems {
		fmt.Fprint(text, el)
	}
	words := strings.Fields(text.String())
	text.Reset()
	var pos int
	for _, word := range words {
		numRunes := utf8.RuneCountInString(word)
		if pos > 0 && pos+numRunes+1 > commentWidth {
			g.P("// ", text.String())
			text.Reset()
			pos = 0
		}
		if pos > 0 {
			text.WriteRune(' ')
			pos++
		}
		text.WriteString(word)
		pos += numRunes
	}
	if text.Len() > 0 {
		g.P("// ", text.String())
	}
}
