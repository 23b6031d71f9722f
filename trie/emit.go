package trie

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"
)

// ImportPath is the import path of this package, used by generated code.
const ImportPath = "github.com/npillmayer/runeset/trie"

// EmitOptions configures WriteGoSource.
type EmitOptions struct {
	Package string // package clause of the generated file
	Var     string // name of the generated variable
	// Import is the import path of package trie. It defaults to ImportPath.
	// Set it to "-" when generating into package trie itself.
	Import  string
	Comment string // doc comment of the variable, may span several lines
}

// WriteGoSource writes t as a gofmt'ed Go source file declaring a variable of
// type *Trie. The generated tables are static data of the consuming program.
func (t *Trie) WriteGoSource(w io.Writer, opts EmitOptions) error {
	if !token.IsIdentifier(opts.Package) {
		return fmt.Errorf("invalid package name %q", opts.Package)
	}
	if !token.IsIdentifier(opts.Var) {
		return fmt.Errorf("invalid variable name %q", opts.Var)
	}
	qualifier := "trie."
	importPath := opts.Import
	switch importPath {
	case "":
		importPath = ImportPath
	case "-":
		importPath, qualifier = "", ""
	}
	var buf bytes.Buffer
	buf.WriteString("// Code generated by package trie. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", opts.Package)
	if importPath != "" {
		fmt.Fprintf(&buf, "import %q\n\n", importPath)
	}
	if opts.Comment != "" {
		for line := range strings.Lines(strings.TrimRight(opts.Comment, "\n")) {
			fmt.Fprintf(&buf, "// %s", line)
		}
		buf.WriteString("\n//\n")
	}
	stats := t.Stats()
	fmt.Fprintf(&buf, "// Depth %d, %d distinct leaves, %d bytes of tables.\n", stats.Depth, stats.Leaves, stats.Bytes)
	fmt.Fprintf(&buf, "var %s = &%sTrie{\n", opts.Var, qualifier)
	writeSlice(&buf, "Widths: []uint8", t.Widths, 16, "%d")
	buf.WriteString("Index: [][]uint16{\n")
	for _, table := range t.Index {
		writeSlice(&buf, "", table, 16, "%d")
	}
	buf.WriteString("},\n")
	writeSlice(&buf, "Leaves: []uint32", t.Leaves, 8, "0x%08X")
	writeSlice(&buf, "Bitmaps: []uint64", t.Bitmaps, 4, "0x%016X")
	writeSlice(&buf, "Ranges: []uint16", t.Ranges, 16, "%d")
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// writeSlice writes a composite literal of values, perLine elements per line.
func writeSlice[E any](buf *bytes.Buffer, prefix string, values []E, perLine int, verb string) {
	buf.WriteString(prefix)
	buf.WriteString("{")
	for i, v := range values {
		if i%perLine == 0 {
			buf.WriteString("\n")
		} else {
			buf.WriteString(" ")
		}
		fmt.Fprintf(buf, verb, v)
		buf.WriteString(",")
	}
	if len(values) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("},\n")
}
