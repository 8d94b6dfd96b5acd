// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"
)

// resolve builds the model from a decoded document, turning names into
// pointers and checking the invariants generators rely on.
func resolve(raw *rawSchema) (*Schema, error) {
	s := &Schema{Namespace: ParseNamespace(raw.Namespace)}
	seen := make(map[string]bool)

	nsOf := func(ns *string) Namespace {
		if ns == nil {
			return s.Namespace
		}
		return ParseNamespace(*ns)
	}

	// Declare every definition first so references may point forward.
	for _, re := range raw.Enums {
		if seen[re.Name] {
			return nil, fmt.Errorf("%w: duplicate definition %q", ErrInvalidModel, re.Name)
		}
		seen[re.Name] = true
		s.Enums = append(s.Enums, &EnumDef{
			Name:      re.Name,
			Namespace: nsOf(re.Namespace),
			IsUnion:   re.Union,
			Generated: re.Generated,
			Doc:       re.Doc,
		})
	}
	for _, rs := range raw.Structs {
		if seen[rs.Name] {
			return nil, fmt.Errorf("%w: duplicate definition %q", ErrInvalidModel, rs.Name)
		}
		seen[rs.Name] = true
		s.Structs = append(s.Structs, &StructDef{
			Name:      rs.Name,
			Namespace: nsOf(rs.Namespace),
			Fixed:     rs.Fixed,
			MinAlign:  rs.MinAlign,
			Private:   rs.Private,
			Generated: rs.Generated,
			Doc:       rs.Doc,
		})
	}

	for i, re := range raw.Enums {
		if err := s.resolveEnum(s.Enums[i], re); err != nil {
			return nil, fmt.Errorf("enum %q: %w", re.Name, err)
		}
	}
	for i, rs := range raw.Structs {
		if err := s.resolveStruct(s.Structs[i], rs); err != nil {
			return nil, fmt.Errorf("struct %q: %w", rs.Name, err)
		}
	}
	return s, nil
}

func (s *Schema) resolveEnum(e *EnumDef, re *rawEnum) error {
	switch {
	case re.Underlying != "":
		b, err := ParseBaseType(re.Underlying)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidModel, err)
		}
		if !b.IsInteger() || b == BaseBool {
			return fmt.Errorf("%w: underlying type %s is not an integer", ErrInvalidModel, b)
		}
		e.Underlying = b
	case re.Union:
		e.Underlying = BaseUType
	default:
		return fmt.Errorf("%w: missing underlying type", ErrInvalidModel)
	}

	names := make(map[string]bool, len(re.Values))
	for i, rv := range re.Values {
		if names[rv.Name] {
			return fmt.Errorf("%w: duplicate variant %q", ErrInvalidModel, rv.Name)
		}
		names[rv.Name] = true
		ev := &EnumVal{Name: rv.Name, Value: rv.Value, Doc: rv.Doc}
		if rv.UnionType != nil {
			if !e.IsUnion {
				return fmt.Errorf("%w: variant %q has a payload but %q is not a union", ErrInvalidModel, rv.Name, e.Name)
			}
			t, err := s.resolveType(rv.UnionType)
			if err != nil {
				return fmt.Errorf("variant %q: %w", rv.Name, err)
			}
			switch {
			case t.Base == BaseString, t.Base == BaseStruct:
			default:
				return fmt.Errorf("%w: variant %q has unsupported payload %s", ErrInvalidModel, rv.Name, t)
			}
			ev.UnionType = t
		}
		if e.IsUnion && i > 0 && ev.UnionType.Base == BaseNone {
			return fmt.Errorf("%w: union variant %q has no payload type", ErrInvalidModel, rv.Name)
		}
		e.Values = append(e.Values, ev)
	}
	if e.IsUnion && e.Values[0].UnionType.Base != BaseNone {
		return fmt.Errorf("%w: first union variant %q must be the none variant", ErrInvalidModel, e.Values[0].Name)
	}
	return nil
}

func (s *Schema) resolveStruct(sd *StructDef, rs *rawStruct) error {
	names := make(map[string]bool, len(rs.Fields))
	for _, rf := range rs.Fields {
		if names[rf.Name] {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidModel, rf.Name)
		}
		names[rf.Name] = true

		t, err := s.resolveType(&rf.Type)
		if err != nil {
			return fmt.Errorf("field %q: %w", rf.Name, err)
		}
		def, err := defaultLiteral(rf.Default)
		if err != nil {
			return fmt.Errorf("%w: field %q default: %v", ErrInvalidModel, rf.Name, err)
		}
		f := &FieldDef{
			Name:       rf.Name,
			Type:       t,
			Offset:     NoOffset,
			Default:    def,
			Deprecated: rf.Deprecated,
			Key:        rf.Key,
			Doc:        rf.Doc,
		}
		if rf.Offset != nil {
			f.Offset = *rf.Offset
		}
		if sd.Fixed && !inlineInStruct(t) {
			return fmt.Errorf("%w: field %q of type %s cannot be stored inline in a fixed structure", ErrInvalidModel, rf.Name, t)
		}
		sd.Fields = append(sd.Fields, f)
	}

	for _, f := range sd.Fields {
		if f.Type.Base != BaseUnion && !(f.Type.Base == BaseVector && f.Type.Element == BaseUnion) {
			continue
		}
		tf := sd.UnionTypeField(f)
		if tf == nil || tf.Type.Enum != f.Type.Enum || !isDiscriminant(f.Type, tf.Type) {
			return fmt.Errorf("%w: union field %q has no matching %q discriminant", ErrInvalidModel, f.Name, f.Name+UnionTypeSuffix)
		}
	}
	return nil
}

func isDiscriminant(union, tag Type) bool {
	if union.Base == BaseVector {
		return tag.Base == BaseVector && tag.Element == BaseUType
	}
	return tag.Base == BaseUType
}

func inlineInStruct(t Type) bool {
	return t.Base.IsScalar() || t.IsFixedStruct()
}

func (s *Schema) resolveType(rt *rawType) (Type, error) {
	b, err := ParseBaseType(rt.Base)
	if err != nil {
		return Type{}, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if b == BaseNone {
		return Type{}, fmt.Errorf("%w: type has no base", ErrInvalidModel)
	}
	t := Type{Base: b}
	elem := b
	if b == BaseVector {
		if rt.Element == "" {
			return Type{}, fmt.Errorf("%w: vector without element type", ErrInvalidModel)
		}
		elem, err = ParseBaseType(rt.Element)
		if err != nil {
			return Type{}, fmt.Errorf("%w: %v", ErrInvalidModel, err)
		}
		if elem == BaseVector || elem == BaseNone {
			return Type{}, fmt.Errorf("%w: vector of %s is not supported", ErrInvalidModel, elem)
		}
		t.Element = elem
	} else if rt.Element != "" {
		return Type{}, fmt.Errorf("%w: element type on non-vector %s", ErrInvalidModel, b)
	}

	switch {
	case elem == BaseStruct:
		if rt.Ref == "" {
			return Type{}, fmt.Errorf("%w: struct type without ref", ErrInvalidModel)
		}
		t.Struct = s.Struct(rt.Ref)
		if t.Struct == nil {
			return Type{}, fmt.Errorf("%w: %q", ErrUnknownReference, rt.Ref)
		}
	case elem == BaseUnion, elem == BaseUType:
		if rt.Enum == "" {
			return Type{}, fmt.Errorf("%w: %s type without enum", ErrInvalidModel, elem)
		}
		t.Enum = s.Enum(rt.Enum)
		if t.Enum == nil {
			return Type{}, fmt.Errorf("%w: %q", ErrUnknownReference, rt.Enum)
		}
		if !t.Enum.IsUnion {
			return Type{}, fmt.Errorf("%w: %q is not a union", ErrInvalidModel, rt.Enum)
		}
	case rt.Enum != "":
		if !elem.IsInteger() || elem == BaseBool {
			return Type{}, fmt.Errorf("%w: enum %q on non-integer %s", ErrInvalidModel, rt.Enum, elem)
		}
		t.Enum = s.Enum(rt.Enum)
		if t.Enum == nil {
			return Type{}, fmt.Errorf("%w: %q", ErrUnknownReference, rt.Enum)
		}
		if t.Enum.IsUnion {
			return Type{}, fmt.Errorf("%w: union %q used as a plain enum", ErrInvalidModel, rt.Enum)
		}
		if elem != t.Enum.Underlying {
			return Type{}, fmt.Errorf("%w: enum %q is %s, not %s", ErrInvalidModel, rt.Enum, t.Enum.Underlying, elem)
		}
	}
	if rt.Ref != "" && t.Struct == nil {
		return Type{}, fmt.Errorf("%w: ref %q on %s", ErrInvalidModel, rt.Ref, elem)
	}
	return t, nil
}
