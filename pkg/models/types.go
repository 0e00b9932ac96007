package models

import "strings"

// PropertyType tags the primitive kind of an editable property.
// Unknown tags are kept as-is so documents round-trip unchanged.
type PropertyType string

const (
	PropertyTypeString  PropertyType = "string"
	PropertyTypeBool    PropertyType = "bool"
	PropertyTypeInt8    PropertyType = "int8"
	PropertyTypeInt16   PropertyType = "int16"
	PropertyTypeInt32   PropertyType = "int32"
	PropertyTypeInt64   PropertyType = "int64"
	PropertyTypeUint8   PropertyType = "uint8"
	PropertyTypeUint16  PropertyType = "uint16"
	PropertyTypeUint32  PropertyType = "uint32"
	PropertyTypeUint64  PropertyType = "uint64"
	PropertyTypeFloat32 PropertyType = "float32"
	PropertyTypeFloat64 PropertyType = "float64"
)

// KnownPropertyTypes lists every recognised tag in display order
var KnownPropertyTypes = []PropertyType{
	PropertyTypeString,
	PropertyTypeBool,
	PropertyTypeInt8,
	PropertyTypeInt16,
	PropertyTypeInt32,
	PropertyTypeInt64,
	PropertyTypeUint8,
	PropertyTypeUint16,
	PropertyTypeUint32,
	PropertyTypeUint64,
	PropertyTypeFloat32,
	PropertyTypeFloat64,
}

// ParsePropertyType normalizes a tag read from a document or the command line.
// Matching is case-insensitive ("Uint32" and "uint32" are the same kind).
// Unrecognised tags are returned trimmed but otherwise untouched.
func ParsePropertyType(s string) PropertyType {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	for _, t := range KnownPropertyTypes {
		if string(t) == lower {
			return t
		}
	}
	if lower == "boolean" {
		return PropertyTypeBool
	}
	return PropertyType(trimmed)
}

// Known reports whether t is one of KnownPropertyTypes
func (t PropertyType) Known() bool {
	for _, known := range KnownPropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// InputType is the control category derived from a PropertyType
type InputType string

const (
	InputTypeNone    InputType = ""
	InputTypeString  InputType = "string"
	InputTypeNumber  InputType = "number"
	InputTypeBoolean InputType = "boolean"
)

// Status is the visual validity flag of an in-progress edit
type Status string

const (
	StatusNone    Status = ""
	StatusError   Status = "error"
	StatusWarning Status = "warning"
)

// Property is a named, typed value held by a node
type Property struct {
	Name  string       `yaml:"name" json:"name"`
	Type  PropertyType `yaml:"type" json:"type"`
	Value any          `yaml:"value,omitempty" json:"value,omitempty"`
}

// Node is the owner of committed property values
type Node struct {
	Name       string     `yaml:"name" json:"name"`
	Path       string     `yaml:"-" json:"-"`
	Properties []Property `yaml:"properties" json:"properties"`
}

// Property returns the index of the named property, or -1
func (n *Node) Property(name string) int {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			return i
		}
	}
	return -1
}
