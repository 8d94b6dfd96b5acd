// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer accumulates generated source one line at a time at the current
// indentation level.
type Writer struct {
	buf    bytes.Buffer
	indent string
	level  int
}

// NewWriter returns a Writer using indent for each level.
func NewWriter(indent string) *Writer {
	return &Writer{indent: indent}
}

// Line writes s as one line. An empty s writes a blank line with no
// indentation. Embedded newlines are indented line by line.
func (w *Writer) Line(s string) {
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			w.buf.WriteString(strings.Repeat(w.indent, w.level))
			w.buf.WriteString(l)
		}
		w.buf.WriteByte('\n')
	}
}

// Linef writes one line formatted with fmt.Sprintf.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (w *Writer) Blank() { w.buf.WriteByte('\n') }

// Indent increases the indentation level.
func (w *Writer) Indent() { w.level++ }

// Outdent decreases the indentation level.
func (w *Writer) Outdent() {
	if w.level > 0 {
		w.level--
	}
}

// Block writes open, runs body one level deeper, then writes close.
func (w *Writer) Block(open, close string, body func()) {
	w.Line(open)
	w.Indent()
	body()
	w.Outdent()
	w.Line(close)
}

// Comment writes each line of doc prefixed with "/// ".
func (w *Writer) Comment(doc []string) {
	for _, d := range doc {
		w.Linef("/// %s", d)
	}
}

// String returns everything written so far.
func (w *Writer) String() string { return w.buf.String() }

// Bytes returns everything written so far.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }
