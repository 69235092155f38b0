package model

import "github.com/sebastian-peter/tscfg/typespec"

// Type is the sum type of the intermediate representation: Basic,
// ObjectType, AbstractObjectType, EnumObjectType, or ListType.
type Type interface {
	isType()
}

// Basic wraps an atomic type-spec DSL type as a Type.
type Basic struct {
	typespec.BasicType
}

func (Basic) isType() {}

// Member is one named field of an ObjectType or AbstractObjectType, or one
// entry of an AnnType's parent class member view.
type Member struct {
	Name string
	Ann  *AnnType
}

// ObjectType is a concrete, instantiable object.
type ObjectType struct {
	Members []Member
}

func (*ObjectType) isType() {}

// AbstractObjectType is a parent class never instantiated at root directly;
// fields may extend it via "@define extends".
type AbstractObjectType struct {
	Members []Member
}

func (*AbstractObjectType) isType() {}

// EnumObjectType is an enumeration of string values.
type EnumObjectType struct {
	Values []string
}

func (*EnumObjectType) isType() {}

// ListType is a homogeneous list.
type ListType struct {
	Element Type
}

func (*ListType) isType() {}

// AnnType is a typed field annotation: a Type together with optionality,
// default, source comments, and an optional parent-member view inherited
// via "@define extends".
type AnnType struct {
	T                  Type
	Optional           bool
	Default            *string
	Comments           *string
	ParentClassMembers []Member
}
