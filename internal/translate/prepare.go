// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/flatcj/internal/schema"

// Plan is the ordered list of entities a translator emits.
type Plan struct {
	Enums   []*schema.EnumDef   // enumerations and unions
	Structs []*schema.StructDef // fixed-layout structures
	Tables  []*schema.StructDef // variable-layout tables
	Skipped []string            // names already generated elsewhere
}

// Prepare orders a schema for emission: enumerations, then fixed structures,
// then tables, each in declaration order. Definitions marked as generated
// elsewhere are left out. The result is identical for identical input.
func Prepare(s *schema.Schema) *Plan {
	p := &Plan{}
	for _, e := range s.Enums {
		if e.Generated {
			p.Skipped = append(p.Skipped, e.Name)
			continue
		}
		p.Enums = append(p.Enums, e)
	}
	for _, sd := range s.Structs {
		if sd.Fixed && !sd.Generated {
			p.Structs = append(p.Structs, sd)
		}
	}
	for _, sd := range s.Structs {
		if sd.Generated {
			p.Skipped = append(p.Skipped, sd.Name)
			continue
		}
		if !sd.Fixed {
			p.Tables = append(p.Tables, sd)
		}
	}
	return p
}
