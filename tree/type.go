package tree

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	SequenceType
	MappingType
	AliasType
	InvalidType
)

var typeNames = map[Type]string{
	NullType:     "Null",
	BoolType:     "Bool",
	IntType:      "Int",
	FloatType:    "Float",
	StringType:   "String",
	SequenceType: "Sequence",
	MappingType:  "Mapping",
	AliasType:    "Alias",
	InvalidType:  "Invalid",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

// IsScalar reports whether values of the type have no children.
func (t Type) IsScalar() bool {
	switch t {
	case SequenceType, MappingType:
		return false
	default:
		return true
	}
}

func (t Type) IsNumber() bool {
	return t == IntType || t == FloatType
}

// Types lists every node type.
func Types() []Type {
	return []Type{NullType, BoolType, IntType, FloatType, StringType, SequenceType, MappingType, AliasType, InvalidType}
}
