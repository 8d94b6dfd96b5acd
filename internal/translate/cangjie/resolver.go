// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cangjie

import (
	"math"
	"strconv"
	"strings"

	"github.com/dacolabs/flatcj/internal/schema"
	"github.com/dacolabs/flatcj/internal/translate"
)

// objectType is the polymorphic base every table class derives from.
const objectType = "FlatBufferObject"

type scalarInfo struct {
	name  string
	width int
}

var scalarTypes = map[schema.BaseType]scalarInfo{
	schema.BaseBool:    {"Bool", 1},
	schema.BaseInt8:    {"Int8", 1},
	schema.BaseUInt8:   {"UInt8", 1},
	schema.BaseInt16:   {"Int16", 2},
	schema.BaseUInt16:  {"UInt16", 2},
	schema.BaseInt32:   {"Int32", 4},
	schema.BaseUInt32:  {"UInt32", 4},
	schema.BaseInt64:   {"Int64", 8},
	schema.BaseUInt64:  {"UInt64", 8},
	schema.BaseFloat32: {"Float32", 4},
	schema.BaseFloat64: {"Float64", 8},
}

// resolver implements translate.TypeResolver for Cangjie.
type resolver struct {
	opts translate.Options
	ns   schema.Namespace
}

var _ translate.TypeResolver = (*resolver)(nil)

func newResolver(s *schema.Schema, opts translate.Options) *resolver {
	return &resolver{opts: opts, ns: s.Namespace}
}

// ScalarType maps a scalar kind to its Cangjie type and width. Union
// discriminants are stored as UInt8.
func (r *resolver) ScalarType(b schema.BaseType) (string, int) {
	if b == schema.BaseUType {
		b = schema.BaseUInt8
	}
	info, ok := scalarTypes[b]
	if !ok {
		translate.Inconsistent("no Cangjie type for scalar kind %s", b)
	}
	return info.name, info.width
}

func (r *resolver) EnumName(e *schema.EnumDef) string {
	return r.qualify(e.Namespace, keywords.Escape(translate.ToCamel(e.Name, false)))
}

func (r *resolver) StructName(sd *schema.StructDef) string {
	return r.qualify(sd.Namespace, keywords.Escape(r.opts.ObjectName(translate.ToCamel(sd.Name, false))))
}

func (r *resolver) TypeName(t schema.Type) string {
	switch {
	case t.Base == schema.BaseVector:
		return r.TypeName(t.VectorType())
	case t.IsEnum():
		return r.EnumName(t.Enum)
	case t.Base.IsScalar():
		name, _ := r.ScalarType(t.Base)
		return name
	case t.Base == schema.BaseString:
		return "String"
	case t.Base == schema.BaseStruct:
		if t.Struct == nil {
			translate.Inconsistent("structure type without a definition")
		}
		return r.StructName(t.Struct)
	case t.Base == schema.BaseUnion:
		return objectType
	}
	translate.Inconsistent("no Cangjie type for %s", t)
	return ""
}

func (r *resolver) FieldName(name string) string {
	return keywords.Escape(translate.ToCamel(name, false))
}

// qualify prefixes name with its namespace components when the namespace is
// not the schema's own.
func (r *resolver) qualify(ns schema.Namespace, name string) string {
	if len(ns) == 0 || ns.Equal(r.ns) {
		return name
	}
	return strings.Join(ns, "_") + "_" + name
}

// accessorName is the method name reading a table field.
func (r *resolver) accessorName(field string) string {
	return "Get" + keywords.Escape(translate.ToCamel(field, true))
}

// slotName is the static constant holding a table field's vtable slot.
func (r *resolver) slotName(field string) string {
	return translate.ToScreamingCase(field)
}

// variantName is the constructor of an enumeration variant.
func (r *resolver) variantName(e *schema.EnumDef, ev *schema.EnumVal) string {
	return translate.ToCamel(e.Name, false) + "_" + translate.ToScreamingCase(ev.Name)
}

// variantRef is a qualified reference to an enumeration variant.
func (r *resolver) variantRef(e *schema.EnumDef, ev *schema.EnumVal) string {
	return r.EnumName(e) + "." + r.variantName(e, ev)
}

// valueOfName is the function converting a raw value to a variant.
func (r *resolver) valueOfName(e *schema.EnumDef) string {
	return "EnumValues" + r.EnumName(e)
}

// reader is the buffer-access method reading one scalar of kind b.
func (r *resolver) reader(b schema.BaseType) string {
	if b == schema.BaseBool {
		b = schema.BaseUInt8
	}
	name, _ := r.ScalarType(b)
	return "get" + name
}

// scalarLiteral renders a declared default of kind b.
func (r *resolver) scalarLiteral(b schema.BaseType, def string) string {
	def = strings.TrimSpace(def)
	switch {
	case b == schema.BaseBool:
		if def == "" || def == "0" || strings.EqualFold(def, "false") {
			return "false"
		}
		return "true"
	case b.IsFloat():
		return r.floatLiteral(b, def)
	case b.IsInteger():
		if def == "" {
			return "0"
		}
		if _, err := strconv.ParseInt(def, 0, 64); err != nil {
			if _, uerr := strconv.ParseUint(def, 0, 64); uerr != nil {
				translate.Inconsistent("default %q is not an integer", def)
			}
		}
		return def
	}
	translate.Inconsistent("no literal for kind %s", b)
	return ""
}

func (r *resolver) floatLiteral(b schema.BaseType, def string) string {
	name, _ := r.ScalarType(b)
	if def == "" {
		return "0.0"
	}
	v, err := strconv.ParseFloat(def, 64)
	if err != nil {
		translate.Inconsistent("default %q is not a number", def)
	}
	switch {
	case math.IsNaN(v):
		return name + ".NaN"
	case math.IsInf(v, 1):
		return name + ".Inf"
	case math.IsInf(v, -1):
		return "-" + name + ".Inf"
	}
	if !strings.ContainsAny(def, ".eE") {
		def += ".0"
	}
	return def
}

// zeroValue is the value a default-constructed fixed structure holds.
func (r *resolver) zeroValue(t schema.Type) string {
	switch {
	case t.IsEnum():
		return r.variantRef(t.Enum, t.Enum.Default())
	case t.Base == schema.BaseBool:
		return "false"
	case t.Base.IsFloat():
		return "0.0"
	case t.Base.IsInteger():
		return "0"
	case t.IsFixedStruct():
		return r.StructName(t.Struct) + "()"
	}
	translate.Inconsistent("no zero value for %s", t)
	return ""
}
