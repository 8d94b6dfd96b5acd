// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package cangjie generates Cangjie readers that decode FlatBuffers data in
// place, without copying it out of the buffer first.
package cangjie

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/flatcj/internal/schema"
	"github.com/dacolabs/flatcj/internal/translate"
)

// GeneratedWarning opens every generated file.
const GeneratedWarning = "automatically generated by flatcj, do not modify"

//go:embed cangjie.cj.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "cangjie.cj.tmpl"))

type fileData struct {
	Warning string
	Package string
	Imports []string
	Body    string
}

// Translator generates one Cangjie source file per schema.
type Translator struct{}

// Register adds the Cangjie translator to r.
func Register(r translate.Register) {
	t := &Translator{}
	r[t.Name()] = t
}

func (t *Translator) Name() string { return "cangjie" }

func (t *Translator) FileExtension() string { return ".cj" }

// Translate emits enumerations, then fixed structures, then tables, each in
// declaration order.
func (t *Translator) Translate(s *schema.Schema, opts translate.Options) (out []byte, err error) {
	defer translate.Recover(&err)

	defaults := translate.DefaultOptions()
	if opts.Package == "" {
		opts.Package = defaults.Package
	}
	if opts.Indent == "" {
		opts.Indent = defaults.Indent
	}
	if opts.Access == "" {
		opts.Access = defaults.Access
	}
	log := opts.Log()
	g := &generator{r: newResolver(s, opts), opts: opts}
	plan := translate.Prepare(s)
	w := translate.NewWriter(opts.Indent)

	for _, name := range plan.Skipped {
		log.Debug("skipping definition generated elsewhere", "name", name)
	}
	for _, e := range plan.Enums {
		log.Debug("emitting enum", "name", e.Name, "union", e.IsUnion, "values", len(e.Values))
		g.genEnum(w, e)
	}
	for _, sd := range plan.Structs {
		log.Debug("emitting struct", "name", sd.Name, "fields", len(sd.Fields))
		g.genStruct(w, sd)
	}
	for _, sd := range plan.Tables {
		log.Debug("emitting table", "name", sd.Name, "fields", len(sd.Fields))
		g.genTable(w, sd)
	}

	var buf bytes.Buffer
	data := fileData{
		Warning: GeneratedWarning,
		Package: opts.Package,
		Imports: opts.Imports,
		Body:    strings.TrimRight(w.String(), "\n"),
	}
	if err := tmpl.ExecuteTemplate(&buf, "cangjie.cj.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// generator holds the state shared by all emitters of one run.
type generator struct {
	r    *resolver
	opts translate.Options
}
