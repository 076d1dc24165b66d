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

// protoc-gen-enumpack-go is a plugin for the Protobuf compiler that derives
// integer codecs for sum types declared as Protobuf messages. To use it,
// build this program and make it available on your PATH as
// protoc-gen-enumpack-go:
//
//	protoc --go_out=gen --enumpack-go_out=gen path/to/file.proto
//
// A message qualifies as a sum type when all of its fields belong to a single
// oneof. Each oneof field declares one variant, in declaration order: uint32
// and uint64 fields (including fixed32/fixed64) are payload variants, and
// google.protobuf.Empty fields are unit variants. Any other field kind fails
// the run. Field numbers don't participate in the encoding; only declaration
// order does.
//
// For each qualifying message, the plugin generates <Message>ToNum and
// <Message>FromNum functions into <file>.enumpack.go, in the same Go package
// as the base .pb.go types. Messages without a oneof are left alone.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/pluginpb"

	"enumpack.dev/enumpack"
)

const (
	enumpackPackage = protogen.GoImportPath("enumpack.dev/enumpack")
	emptypbPackage  = protogen.GoImportPath("google.golang.org/protobuf/types/known/emptypb")
	fmtPackage      = protogen.GoImportPath("fmt")

	generatedFilenameExtension = ".enumpack.go"

	usage = "Run protoc-gen-enumpack-go as a protoc plugin; it reads a CodeGeneratorRequest from stdin.\n\nFlags:\n  -h, --help\tPrint this help and exit.\n      --version\tPrint the version and exit."

	commentWidth = 97 // leave room for "// "

	emptyFullName = "google.protobuf.Empty"
)

func main() {
	if len(os.Args) == 2 && os.Args[1] == "--version" {
		fmt.Fprintln(os.Stdout, enumpack.Version)
		os.Exit(0)
	}
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Fprintln(os.Stdout, usage)
		os.Exit(0)
	}
	if len(os.Args) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	protogen.Options{}.Run(
		func(plugin *protogen.Plugin) error {
			plugin.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)
			for _, file := range plugin.Files {
				if file.Generate {
					generate(plugin, file)
				}
			}
			return nil
		},
	)
}

func generate(plugin *protogen.Plugin, file *protogen.File) {
	sums, err := collectSumMessages(nil, file.Messages)
	if err != nil {
		plugin.Error(err)
		return
	}
	if len(sums) == 0 {
		return
	}
	generatedFile := plugin.NewGeneratedFile(
		file.GeneratedFilenamePrefix+generatedFilenameExtension,
		file.GoImportPath,
	)
	generatePreamble(generatedFile, file)
	for _, sum := range sums {
		generateSum(generatedFile, sum)
	}
}

// collectSumMessages qualifies messages depth-first, including messages
// nested inside other messages, so a mis-shaped oneof fails the run no matter
// how deeply it's declared.
func collectSumMessages(sums []*sumMessage, messages []*protogen.Message) ([]*sumMessage, error) {
	for _, message := range messages {
		sum, err := newSumMessage(message)
		if err != nil {
			return nil, err
		}
		if sum != nil {
			sums = append(sums, sum)
		}
		sums, err = collectSumMessages(sums, message.Messages)
		if err != nil {
			return nil, err
		}
	}
	return sums, nil
}

// A sumMessage is a message whose fields all live in one oneof, making the
// oneof a sum type with one variant per field.
type sumMessage struct {
	message  *protogen.Message
	oneof    *protogen.Oneof
	variants []sumVariant
	tagWidth int
}

type sumVariant struct {
	field *protogen.Field
	tag   uint64
	// unit marks a google.protobuf.Empty variant, which packs no payload.
	unit bool
}

// newSumMessage qualifies a message as a sum type. Messages without a oneof
// are skipped with a nil sumMessage; messages that declare a oneof but don't
// meet the contract fail the run.
func newSumMessage(message *protogen.Message) (*sumMessage, error) {
	var oneofs []*protogen.Oneof
	for _, oneof := range message.Oneofs {
		if !oneof.Desc.IsSynthetic() {
			oneofs = append(oneofs, oneof)
		}
	}
	if len(oneofs) == 0 {
		return nil, nil
	}
	name := message.Desc.FullName()
	if len(oneofs) > 1 {
		return nil, fmt.Errorf("message %s declares %d oneofs; a sum type has exactly one", name, len(oneofs))
	}
	oneof := oneofs[0]
	for _, field := range message.Fields {
		if field.Oneof == nil || field.Oneof.Desc.IsSynthetic() {
			return nil, fmt.Errorf("message %s: field %s is declared outside the %s oneof", name, field.Desc.Name(), oneof.Desc.Name())
		}
	}
	sum := &sumMessage{message: message, oneof: oneof}
	for i, field := range oneof.Fields {
		variant := sumVariant{field: field, tag: uint64(i)}
		switch field.Desc.Kind() {
		case protoreflect.Uint32Kind, protoreflect.Fixed32Kind,
			protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		case protoreflect.MessageKind:
			if field.Desc.Message().FullName() != emptyFullName {
				return nil, variantKindError(name, field)
			}
			variant.unit = true
		default:
			return nil, variantKindError(name, field)
		}
		sum.variants = append(sum.variants, variant)
	}
	sum.tagWidth = enumpack.TagWidth(len(sum.variants))
	return sum, nil
}

func variantKindError(messageName protoreflect.FullName, field *protogen.Field) error {
	return fmt.Errorf(
		"message %s: oneof field %s has kind %s; only uint32, uint64, and google.protobuf.Empty fields can be variants",
		messageName, field.Desc.Name(), field.Desc.Kind(),
	)
}

func generatePreamble(g *protogen.GeneratedFile, file *protogen.File) {
	programName := filepath.Base(os.Args[0])
	// Remove .exe suffix on Windows so that generated code is stable, regardless
	// of whether it was generated on a Windows machine or not.
	if ext := filepath.Ext(programName); strings.ToLower(ext) == ".exe" {
		programName = strings.TrimSuffix(programName, ext)
	}
	g.P("// Code generated by ", programName, ". DO NOT EDIT.")
	g.P("//")
	g.P("// Source: ", file.Desc.Path())
	g.P()
	g.P("package ", file.GoPackageName)
	g.P()
	wrapComments(g, "This is a compile-time assertion to ensure that this generated file ",
		"and the enumpack package are compatible. If you get a compiler error that this constant ",
		"is not defined, this code was generated with a version of enumpack newer than the one ",
		"compiled into your binary. You can fix the problem by either regenerating this code ",
		"with an older version of enumpack or updating the enumpack version compiled into your binary.")
	g.P("const _ = ", enumpackPackage.Ident("IsAtLeastVersion0_1_0"))
	g.P()
}

func generateSum(g *protogen.GeneratedFile, sum *sumMessage) {
	generateTagWidthConstant(g, sum)
	generateToNum(g, sum)
	generateFromNum(g, sum)
}

func generateTagWidthConstant(g *protogen.GeneratedFile, sum *sumMessage) {
	widthConst := widthConstName(sum)
	wrapComments(g, widthConst, " is the number of low-order bits of a packed integer that hold a ",
		sum.message.GoIdent, " variant's tag. The payload, if any, occupies the remaining high-order bits.")
	g.P("const ", widthConst, " = ", sum.tagWidth)
	g.P()
}

func generateToNum(g *protogen.GeneratedFile, sum *sumMessage) {
	msgName := g.QualifiedGoIdent(sum.message.GoIdent)
	toNum := sum.message.GoIdent.GoName + "ToNum"
	wrapComments(g, toNum, " packs msg's ", sum.oneof.GoName, " variant and its payload, if any, ",
		"into a single integer. It fails only when msg is nil or no variant is set; payload bits ",
		"that don't fit below bit 64 are silently discarded.")
	g.P("func ", toNum, "(msg *", msgName, ") (uint64, error) {")
	if sum.hasPayload() {
		g.P("switch v := msg.Get", sum.oneof.GoName, "().(type) {")
	} else {
		g.P("switch msg.Get", sum.oneof.GoName, "().(type) {")
	}
	for _, variant := range sum.variants {
		g.P("case *", wrapperName(sum, variant), ":")
		if variant.unit {
			g.P("return ", enumpackPackage.Ident("Pack"), "(", variant.tag, ", 0, ", widthConstName(sum), "), nil")
		} else {
			g.P("return ", enumpackPackage.Ident("Pack"), "(", variant.tag, ", uint64(v.", variant.field.GoName, "), ", widthConstName(sum), "), nil")
		}
	}
	g.P("}")
	g.P(`return 0, `, fmtPackage.Ident("Errorf"), `("enumpack: encode `, msgName, `: no `, sum.oneof.GoName, ` variant set")`)
	g.P("}")
	g.P()
}

func generateFromNum(g *protogen.GeneratedFile, sum *sumMessage) {
	msgName := g.QualifiedGoIdent(sum.message.GoIdent)
	fromNum := sum.message.GoIdent.GoName + "FromNum"
	wrapComments(g, fromNum, " unpacks an integer produced by ", sum.message.GoIdent.GoName,
		"ToNum back into a ", sum.message.GoIdent, " with the matching ", sum.oneof.GoName,
		" variant set. Integers whose tag matches no variant are rejected with a *enumpack.DecodeError.")
	g.P("func ", fromNum, "(num uint64) (*", msgName, ", error) {")
	if sum.hasPayload() {
		g.P("tag, payload := ", enumpackPackage.Ident("Unpack"), "(num, ", widthConstName(sum), ")")
	} else {
		g.P("tag, _ := ", enumpackPackage.Ident("Unpack"), "(num, ", widthConstName(sum), ")")
	}
	g.P("switch tag {")
	for _, variant := range sum.variants {
		g.P("case ", variant.tag, ":")
		g.P("return &", msgName, "{", sum.oneof.GoName, ": &", wrapperName(sum, variant), "{",
			variant.field.GoName, ": ", payloadExpr(g, variant), "}}, nil")
	}
	g.P("}")
	g.P("return nil, ", enumpackPackage.Ident("NewDecodeError"), `("`, sum.message.GoIdent.GoName, `", num, tag)`)
	g.P("}")
	g.P()
}

// payloadExpr renders the value stored in a rebuilt variant's wrapper struct:
// a fresh Empty for unit variants, the unpacked payload otherwise, truncated
// to the field's declared width.
func payloadExpr(g *protogen.GeneratedFile, variant sumVariant) string {
	if variant.unit {
		return "&" + g.QualifiedGoIdent(emptypbPackage.Ident("Empty")) + "{}"
	}
	switch variant.field.Desc.Kind() {
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return "uint32(payload)"
	default:
		return "payload"
	}
}

func (s *sumMessage) hasPayload() bool {
	for _, variant := range s.variants {
		if !variant.unit {
			return true
		}
	}
	return false
}

func wrapperName(sum *sumMessage, variant sumVariant) string {
	return sum.message.GoIdent.GoName + "_" + variant.field.GoName
}

func widthConstName(sum *sumMessage) string {
	return unexport(sum.message.GoIdent.GoName) + "TagWidth"
}

func unexport(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}

// wrapComments prints elems as a word-wrapped doc comment, resolving protogen
// identifiers along the way. Quadratic, but comments are short.
func wrapComments(g *protogen.GeneratedFile, elems ...any) {
	text := &bytes.Buffer{}
	for _, el := range elems {
		switch el := el.(type) {
		case protogen.GoIdent:
			fmt.Fprint(text, g.QualifiedGoIdent(el))
		default:
			fmt.Fprint(text, el)
		}
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
