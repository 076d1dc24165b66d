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

// enumpack-gen derives integer codecs for Go sum types. It's meant to run
// under go generate, next to the type declarations:
//
//	//go:generate go run enumpack.dev/enumpack/cmd/enumpack-gen -type Signal,Phase
//
// A sum type is a sealed interface (one unexported, niladic marker method)
// plus the struct types in the same package implementing it with value
// receivers; each variant struct carries at most one unsigned integer field.
// For every requested type, enumpack-gen writes a ToNum method per variant
// and a FromNum function into a single generated file in the same package.
//
// By default the output lands next to the package sources as
// <type>_enumpack.go, named after the first requested type; -output picks
// another name. -start shifts the first variant's tag, widening the tag field
// accordingly, for codecs that must stay clear of reserved low values.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"enumpack.dev/enumpack"
	"enumpack.dev/enumpack/internal/deriver"
)

const usage = `Usage: enumpack-gen -type T[,T...] [-output file.go] [-start N] [package]

Derives ToNum/FromNum integer codecs for the named sum types. With no package
pattern, enumpack-gen processes the package in the current directory, which is
what running under go generate does.

Flags:
  -type		Comma-separated sum type names to derive codecs for. Required.
  -output	Output file name. Defaults to <type>_enumpack.go in the package directory.
  -start	Tag assigned to the first variant of each type. Defaults to 0.
  -h, --help	Print this help and exit.
      --version	Print the version and exit.`

func main() {
	if len(os.Args) == 2 && os.Args[1] == "--version" {
		fmt.Fprintln(os.Stdout, enumpack.Version)
		os.Exit(0)
	}
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Fprintln(os.Stdout, usage)
		os.Exit(0)
	}
	flagSet := flag.NewFlagSet("enumpack-gen", flag.ExitOnError)
	flagSet.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
	}
	typeList := flagSet.String("type", "", "comma-separated sum type names")
	output := flagSet.String("output", "", "output file name")
	start := flagSet.Uint64("start", 0, "tag of the first variant")
	_ = flagSet.Parse(os.Args[1:])
	typeNames := splitTypeNames(*typeList)
	if len(typeNames) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	patterns := flagSet.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	if err := run(typeNames, *output, *start, patterns); err != nil {
		fmt.Fprintln(os.Stderr, "enumpack-gen:", err)
		os.Exit(1)
	}
}

func run(typeNames []string, output string, start uint64, patterns []string) error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("loading %s: %w", strings.Join(patterns, " "), err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return errors.New("package contains errors")
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("patterns %s matched %d packages; name exactly one", strings.Join(patterns, " "), len(pkgs))
	}
	pkg := pkgs[0]

	enums := make([]*deriver.Enum, 0, len(typeNames))
	for _, name := range typeNames {
		enum, err := deriver.Analyze(pkg.Types, pkg.Syntax, name, start)
		if err != nil {
			return err
		}
		enums = append(enums, enum)
	}
	src, err := deriver.Generate("enumpack-gen", pkg.Name, pkg.PkgPath, enums)
	if err != nil {
		return err
	}

	target := output
	if target == "" {
		target = defaultOutput(typeNames[0])
	}
	if !filepath.IsAbs(target) && len(pkg.GoFiles) > 0 {
		target = filepath.Join(filepath.Dir(pkg.GoFiles[0]), target)
	}
	if err := os.WriteFile(target, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

func splitTypeNames(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func defaultOutput(typeName string) string {
	return strings.ToLower(typeName) + "_enumpack.go"
}
