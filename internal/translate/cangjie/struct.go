// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cangjie

import (
	"fmt"

	"github.com/dacolabs/flatcj/internal/layout"
	"github.com/dacolabs/flatcj/internal/schema"
	"github.com/dacolabs/flatcj/internal/translate"
)

// genStruct writes a fixed structure as a value type decoded eagerly from
// the buffer. The decoding constructor checks the whole structure is in
// bounds before reading any member.
func (g *generator) genStruct(w *translate.Writer, sd *schema.StructDef) {
	l := structLayout(sd)
	name := g.r.StructName(sd)
	vis := visibility(sd)

	w.Comment(sd.Doc)
	w.Block(fmt.Sprintf("%sstruct %s {", vis, name), "}", func() {
		w.Linef("%sstatic let BYTE_ALIGNMENT: UInt32 = %d", vis, l.Align)
		w.Linef("%sstatic let BYTE_SIZE: UInt32 = %d", vis, l.Size)
		w.Blank()

		members := liveMembers(l)
		for _, fl := range members {
			w.Comment(fl.Field.Doc)
			w.Linef("%slet %s: %s", vis, g.r.FieldName(fl.Field.Name), g.r.TypeName(fl.Field.Type))
		}
		if len(members) > 0 {
			w.Blank()
		}

		w.Block(fmt.Sprintf("%sinit() {", vis), "}", func() {
			for _, fl := range members {
				w.Linef("this.%s = %s", g.r.FieldName(fl.Field.Name), g.r.zeroValue(fl.Field.Type))
			}
		})
		w.Blank()

		w.Block(fmt.Sprintf("%sinit(buf: Array<UInt8>, pos: UInt32) {", vis), "}", func() {
			w.Line("boundsCheck(buf, Int64(pos + BYTE_SIZE))")
			for _, fl := range members {
				w.Linef("this.%s = %s", g.r.FieldName(fl.Field.Name), g.memberRead(fl))
			}
		})
	})
	w.Blank()
}

// memberRead decodes one member of a fixed structure at pos.
func (g *generator) memberRead(fl layout.FieldLayout) string {
	t := fl.Field.Type
	switch {
	case t.IsFixedStruct():
		return fmt.Sprintf("%s(buf, %s)", g.r.StructName(t.Struct), plus("pos", fl.Offset))
	case t.Base.IsScalar():
		read := fmt.Sprintf("%s(%s)", g.r.reader(t.Base), fixedRange("buf", "pos", fl.Offset, fl.Width))
		switch {
		case t.IsEnum():
			return fmt.Sprintf("%s(%s)", g.r.valueOfName(t.Enum), read)
		case t.Base == schema.BaseBool:
			return read + " != 0"
		}
		return read
	}
	translate.Inconsistent("fixed structure member %s has type %s", fl.Field.Name, t)
	return ""
}

// liveMembers drops deprecated fields; their bytes stay in the layout.
func liveMembers(l layout.StructLayout) []layout.FieldLayout {
	out := make([]layout.FieldLayout, 0, len(l.Fields))
	for _, fl := range l.Fields {
		if !fl.Field.Deprecated {
			out = append(out, fl)
		}
	}
	return out
}

func visibility(sd *schema.StructDef) string {
	if sd.Private {
		return "internal "
	}
	return "public "
}
