// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName indicates two entities/enums, or two fields of one entity,
	// share a name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrUnresolvedType indicates a field type does not resolve to a primitive,
	// an enum or an entity of the declared kind.
	ErrUnresolvedType = errors.New("unresolved type")
)

// Check verifies name uniqueness and that every field type resolves according
// to its kind. All violations are returned joined.
func Check(s *Schema) error {
	var errs []error

	declared := make(map[string]string, len(s.Entities)+len(s.Enums))
	for _, e := range s.Entities {
		if prev, ok := declared[e.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: entity %q already declared as %s", ErrDuplicateName, e.Name, prev))
			continue
		}
		declared[e.Name] = "entity"
	}
	for _, e := range s.Enums {
		if prev, ok := declared[e.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: enum %q already declared as %s", ErrDuplicateName, e.Name, prev))
			continue
		}
		declared[e.Name] = "enum"
	}

	for _, e := range s.Entities {
		seen := make(map[string]bool, len(e.Fields))
		for _, f := range e.Fields {
			if seen[f.Name] {
				errs = append(errs, fmt.Errorf("%w: entity %q field %q", ErrDuplicateName, e.Name, f.Name))
			}
			seen[f.Name] = true

			if err := checkFieldType(f, declared); err != nil {
				errs = append(errs, fmt.Errorf("entity %q field %q: %w", e.Name, f.Name, err))
			}
		}
	}

	return errors.Join(errs...)
}

func checkFieldType(f Field, declared map[string]string) error {
	switch f.Kind {
	case KindScalar:
		if !IsPrimitive(f.Type) {
			return fmt.Errorf("%w: %q is not a primitive type", ErrUnresolvedType, f.Type)
		}
	case KindEnum:
		if declared[f.Type] != "enum" {
			return fmt.Errorf("%w: enum %q not found", ErrUnresolvedType, f.Type)
		}
	case KindObject:
		if declared[f.Type] != "entity" {
			return fmt.Errorf("%w: entity %q not found", ErrUnresolvedType, f.Type)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrUnresolvedType, f.Kind)
	}
	return nil
}
