// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package classvalidator

import (
	"github.com/alexandermendes/prisma-typestack/internal/schema"
)

const (
	validatorPackage   = "class-validator"
	transformerPackage = "class-transformer"
)

// DecoratorKind identifies the role a decorator plays on a field.
type DecoratorKind int

const (
	// DecoratorOptional is the IsOptional marker.
	DecoratorOptional DecoratorKind = iota
	// DecoratorValidator is a primitive validator such as IsInt.
	DecoratorValidator
	// DecoratorEnum is IsEnum parameterized by the enum name.
	DecoratorEnum
	// DecoratorType is the class-transformer Type coercion marker.
	DecoratorType
	// DecoratorNested is the ValidateNested marker.
	DecoratorNested
)

// Args are the call arguments applied to a field's validators.
type Args struct {
	Each bool // validate every element of a list
}

// IsEmpty reports whether there is nothing to pass.
func (a Args) IsEmpty() bool {
	return !a.Each
}

func (a Args) String() string {
	if a.Each {
		return "{ each: true }"
	}
	return ""
}

// Decorator is one annotation attached to a field.
type Decorator struct {
	Kind   DecoratorKind
	Name   string // decorator symbol, e.g. "IsInt"
	Target string // enum or entity name for IsEnum and Type
	Args   Args
}

// Package returns the npm package exporting the decorator.
func (d Decorator) Package() string {
	if d.Kind == DecoratorType {
		return transformerPackage
	}
	return validatorPackage
}

// String renders the decorator as it appears above the field.
func (d Decorator) String() string {
	switch d.Kind {
	case DecoratorEnum:
		if d.Args.IsEmpty() {
			return "@" + d.Name + "(" + d.Target + ")"
		}
		return "@" + d.Name + "(" + d.Target + ", " + d.Args.String() + ")"
	case DecoratorType:
		return "@" + d.Name + "(() => " + d.Target + ")"
	default:
		return "@" + d.Name + "(" + d.Args.String() + ")"
	}
}

// Decorators returns the ordered decorators of a field: the optional marker
// first, then exactly one validator, or Type followed by ValidateNested for
// entity references.
func Decorators(f schema.Field) []Decorator {
	args := Args{Each: f.List}

	decorators := make([]Decorator, 0, 3)
	if isOptional(f) {
		decorators = append(decorators, Decorator{Kind: DecoratorOptional, Name: "IsOptional"})
	}

	switch {
	case f.IsPrimitive():
		decorators = append(decorators, Decorator{
			Kind: DecoratorValidator,
			Name: validatorName(schema.Primitive(f.Type)),
			Args: args,
		})
	case f.Kind == schema.KindEnum:
		decorators = append(decorators, Decorator{
			Kind:   DecoratorEnum,
			Name:   "IsEnum",
			Target: f.Type,
			Args:   args,
		})
	default:
		decorators = append(decorators,
			Decorator{Kind: DecoratorType, Name: "Type", Target: f.Type},
			Decorator{Kind: DecoratorNested, Name: "ValidateNested", Args: args},
		)
	}

	return decorators
}
