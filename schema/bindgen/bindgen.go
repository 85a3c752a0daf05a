// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bindgen turns a program schema into Go source: one typed value per
// record kind, one argument struct and builder per instruction kind. It is a
// pure function from schema to source text; callers decide where the output
// lives.
package bindgen

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/luxfi/wire/schema"
)

// Generate emits a single Go source file declaring bindings for every kind
// in the schema, formatted and import-pruned. The schema is validated first;
// a discriminator collision fails generation the same way it would fail a
// build.
func Generate(p *schema.Program, pkg string) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validating schema: %w", err)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by wire bindgen from the %s schema. DO NOT EDIT.\n\n", p.Name)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString(`import (
	"github.com/luxfi/wire/address"
	"github.com/luxfi/wire/discriminator"
	"github.com/luxfi/wire/instruction"
	"github.com/luxfi/wire/record"
	"github.com/luxfi/wire/utils/wrappers"
)

`)

	for _, r := range p.Records {
		writeRecord(&b, r)
	}
	for _, i := range p.Instructions {
		writeInstruction(&b, i)
	}

	src, err := imports.Process(pkg+".go", b.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated bindings: %w", err)
	}
	return src, nil
}

func writeRecord(b *bytes.Buffer, r schema.Record) {
	name := exportName(r.Name)
	fmt.Fprintf(b, "var %sDiscriminator = discriminator.Derive(%q)\n\n", lowerName(r.Name), r.Namespace)
	fmt.Fprintf(b, "// %s is the %q record.\n", name, r.Namespace)
	fmt.Fprintf(b, "type %s struct {\n", name)
	for _, f := range r.Fields {
		fmt.Fprintf(b, "\t%s %s\n", exportName(f.Name), goType(f))
	}
	fmt.Fprintf(b, "}\n\n")

	fmt.Fprintf(b, "var _ record.Value = (*%s)(nil)\n\n", name)
	fmt.Fprintf(b, "func (*%s) Discriminator() discriminator.Discriminator {\n\treturn %sDiscriminator\n}\n\n", name, lowerName(r.Name))

	fmt.Fprintf(b, "func (v *%s) PackValue(p *wrappers.Packer) {\n", name)
	for _, f := range r.Fields {
		writePack(b, "v."+exportName(f.Name), f)
	}
	fmt.Fprintf(b, "}\n\n")

	fmt.Fprintf(b, "func (v *%s) UnpackValue(p *wrappers.Packer) {\n", name)
	for _, f := range r.Fields {
		writeUnpack(b, "v."+exportName(f.Name), f)
	}
	fmt.Fprintf(b, "}\n\n")
}

func writeInstruction(b *bytes.Buffer, ins schema.Instruction) {
	name := exportName(ins.Name)
	fmt.Fprintf(b, "var %sDiscriminator = discriminator.Derive(%q)\n\n", lowerName(ins.Name), ins.Namespace)
	fmt.Fprintf(b, "// %sArgs are the arguments of the %q instruction.\n", name, ins.Namespace)
	fmt.Fprintf(b, "type %sArgs struct {\n", name)
	for _, f := range ins.Args {
		fmt.Fprintf(b, "\t%s %s\n", exportName(f.Name), goType(f))
	}
	fmt.Fprintf(b, "}\n\n")

	fmt.Fprintf(b, "var _ instruction.ParsableArgs = (*%sArgs)(nil)\n\n", name)
	fmt.Fprintf(b, "func (*%sArgs) Discriminator() discriminator.Discriminator {\n\treturn %sDiscriminator\n}\n\n", name, lowerName(ins.Name))

	fmt.Fprintf(b, "func (a *%sArgs) PackArgs(p *wrappers.Packer) {\n", name)
	for _, f := range ins.Args {
		writePack(b, "a."+exportName(f.Name), f)
	}
	fmt.Fprintf(b, "}\n\n")

	fmt.Fprintf(b, "func (a *%sArgs) UnpackArgs(p *wrappers.Packer) {\n", name)
	for _, f := range ins.Args {
		writeUnpack(b, "a."+exportName(f.Name), f)
	}
	fmt.Fprintf(b, "}\n\n")

	// Builder: one address parameter per declared account, flags fixed by
	// the schema, remaining accounts appended in caller order.
	fmt.Fprintf(b, "// New%sInstruction builds a %q instruction.\n", name, ins.Namespace)
	fmt.Fprintf(b, "func New%sInstruction(programID address.Address, args *%sArgs", name, name)
	for _, a := range ins.Accounts {
		fmt.Fprintf(b, ", %s address.Address", paramName(a.Name))
	}
	fmt.Fprintf(b, ", remaining ...instruction.AccountMeta) (*instruction.Instruction, error) {\n")
	fmt.Fprintf(b, "\tdeclared := []instruction.AccountMeta{\n")
	for _, a := range ins.Accounts {
		fmt.Fprintf(b, "\t\tinstruction.Meta(%s, %t, %t),\n", paramName(a.Name), a.Signer, a.Writable)
	}
	fmt.Fprintf(b, "\t}\n")
	fmt.Fprintf(b, "\treturn instruction.Build(programID, args, declared, remaining...)\n}\n\n")
}

func goType(f schema.Field) string {
	var elem string
	switch f.Type {
	case schema.U8:
		elem = "byte"
	case schema.U16:
		elem = "uint16"
	case schema.U32:
		elem = "uint32"
	case schema.U64:
		elem = "uint64"
	case schema.I64:
		elem = "int64"
	case schema.Bool:
		elem = "bool"
	case schema.Address:
		elem = "address.Address"
	case schema.Bytes:
		return "[]byte"
	}
	if f.ArrayLen > 0 {
		return fmt.Sprintf("[%d]%s", f.ArrayLen, elem)
	}
	return elem
}

func writePack(b *bytes.Buffer, expr string, f schema.Field) {
	if f.ArrayLen > 0 {
		if f.Type == schema.U8 {
			fmt.Fprintf(b, "\tp.PackFixedBytes(%s[:])\n", expr)
			return
		}
		fmt.Fprintf(b, "\tfor i := range %s {\n\t%s\t}\n", expr, packStmt(expr+"[i]", f.Type))
		return
	}
	b.WriteString(packStmt(expr, f.Type))
}

func packStmt(expr string, t schema.Type) string {
	switch t {
	case schema.U8:
		return fmt.Sprintf("\tp.PackByte(%s)\n", expr)
	case schema.U16:
		return fmt.Sprintf("\tp.PackShort(%s)\n", expr)
	case schema.U32:
		return fmt.Sprintf("\tp.PackInt(%s)\n", expr)
	case schema.U64:
		return fmt.Sprintf("\tp.PackLong(%s)\n", expr)
	case schema.I64:
		return fmt.Sprintf("\tp.PackLong(uint64(%s))\n", expr)
	case schema.Bool:
		return fmt.Sprintf("\tp.PackBool(%s)\n", expr)
	case schema.Address:
		return fmt.Sprintf("\tp.PackFixedBytes(%s[:])\n", expr)
	case schema.Bytes:
		return fmt.Sprintf("\tp.PackBytes(%s)\n", expr)
	}
	return ""
}

func writeUnpack(b *bytes.Buffer, expr string, f schema.Field) {
	if f.ArrayLen > 0 {
		if f.Type == schema.U8 {
			fmt.Fprintf(b, "\tcopy(%s[:], p.UnpackFixedBytes(%d))\n", expr, f.ArrayLen)
			return
		}
		fmt.Fprintf(b, "\tfor i := range %s {\n\t%s\t}\n", expr, unpackStmt(expr+"[i]", f.Type))
		return
	}
	b.WriteString(unpackStmt(expr, f.Type))
}

func unpackStmt(expr string, t schema.Type) string {
	switch t {
	case schema.U8:
		return fmt.Sprintf("\t%s = p.UnpackByte()\n", expr)
	case schema.U16:
		return fmt.Sprintf("\t%s = p.UnpackShort()\n", expr)
	case schema.U32:
		return fmt.Sprintf("\t%s = p.UnpackInt()\n", expr)
	case schema.U64:
		return fmt.Sprintf("\t%s = p.UnpackLong()\n", expr)
	case schema.I64:
		return fmt.Sprintf("\t%s = int64(p.UnpackLong())\n", expr)
	case schema.Bool:
		return fmt.Sprintf("\t%s = p.UnpackBool()\n", expr)
	case schema.Address:
		return fmt.Sprintf("\tcopy(%s[:], p.UnpackFixedBytes(address.Size))\n", expr)
	case schema.Bytes:
		return fmt.Sprintf("\t%s = p.UnpackBytes()\n", expr)
	}
	return ""
}

// exportName converts a snake_case schema name to an exported Go identifier.
func exportName(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}

func lowerName(name string) string {
	exported := exportName(name)
	return strings.ToLower(exported[:1]) + exported[1:]
}

// paramName derives a builder parameter from an account name. Names that
// would collide with Go keywords or the builder's own parameters get a
// trailing underscore.
func paramName(name string) string {
	n := lowerName(name)
	switch n {
	case "programID", "args", "declared", "remaining":
		return n + "_"
	}
	if token.IsKeyword(n) {
		return n + "_"
	}
	return n
}
