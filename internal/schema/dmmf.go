// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"fmt"
)

// rawDMMF is the subset of a Prisma DMMF document the generator reads.
type rawDMMF struct {
	Datamodel *struct {
		Models []struct {
			Name   string `json:"name"`
			Fields []struct {
				Name       string `json:"name"`
				Kind       string `json:"kind"`
				Type       string `json:"type"`
				IsRequired bool   `json:"isRequired"`
				IsList     bool   `json:"isList"`
			} `json:"fields"`
		} `json:"models"`
		Enums []struct {
			Name   string `json:"name"`
			Values []struct {
				Name string `json:"name"`
			} `json:"values"`
		} `json:"enums"`
	} `json:"datamodel"`
}

func decodeDMMF(data []byte) (*rawDocument, error) {
	var dmmf rawDMMF
	if err := json.Unmarshal(data, &dmmf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if dmmf.Datamodel == nil {
		return nil, fmt.Errorf("%w: missing datamodel", ErrInvalidSchema)
	}

	doc := &rawDocument{}
	for _, m := range dmmf.Datamodel.Models {
		entity := rawEntity{Name: m.Name}
		for _, f := range m.Fields {
			kind := FieldKind(f.Kind)
			switch kind {
			case KindScalar, KindEnum, KindObject:
			default:
				return nil, fmt.Errorf("%w: model %q field %q: unsupported kind %q",
					ErrInvalidSchema, m.Name, f.Name, f.Kind)
			}
			required := f.IsRequired
			entity.Fields = append(entity.Fields, rawField{
				Name:     f.Name,
				Type:     f.Type,
				Required: &required,
				List:     f.IsList,
				Kind:     kind,
			})
		}
		doc.Entities = append(doc.Entities, entity)
	}

	for _, e := range dmmf.Datamodel.Enums {
		values := make([]string, 0, len(e.Values))
		for _, v := range e.Values {
			values = append(values, v.Name)
		}
		doc.Enums = append(doc.Enums, rawEnum{Name: e.Name, Values: values})
	}

	return doc, nil
}
