// Copyright 2025 The go-jsonabi Authors
// This file is part of the go-jsonabi library.
//
// The go-jsonabi library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-jsonabi library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-jsonabi library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when deriving signatures and mapping documents.
type Argument struct {
	Name    string
	Type    Type
	Indexed bool // indexed is only used by events
}

// Arguments is an ordered list of Argument.
type Arguments []Argument

// ArgumentMarshaling is the document form of a single parameter.
type ArgumentMarshaling struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	InternalType string               `json:"internalType,omitempty"`
	Components   []ArgumentMarshaling `json:"components,omitempty"`
	Indexed      bool                 `json:"indexed,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}

	argument.Type, err = NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed

	return nil
}

// MarshalJSON implements json.Marshaler. The document form is re-derived from
// the resolved type, so a model parsed from legacy input still emits the
// modern shape.
func (argument Argument) MarshalJSON() ([]byte, error) {
	return json.Marshal(argument.marshaling())
}

func (argument Argument) marshaling() ArgumentMarshaling {
	m := marshalType(argument.Type)
	m.Name = argument.Name
	m.Indexed = argument.Indexed
	return m
}

// marshalType renders the document view of a resolved type: elementary types
// keep their canonical string, tuples become "tuple" with a component list
// and the array suffixes re-applied.
func marshalType(t Type) ArgumentMarshaling {
	// peel the array suffixes down to the base type, rebuilding the suffix
	// string outer-to-inner
	suffix := ""
	base := t
	for base.T == SliceTy || base.T == ArrayTy {
		if base.T == SliceTy {
			suffix = "[]" + suffix
		} else {
			suffix = "[" + strconv.Itoa(base.Size) + "]" + suffix
		}
		base = *base.Elem
	}
	if base.T != TupleTy {
		return ArgumentMarshaling{Type: base.stringKind + suffix}
	}
	components := make([]ArgumentMarshaling, len(base.TupleElems))
	for i, elem := range base.TupleElems {
		components[i] = marshalType(*elem)
		components[i].Name = base.TupleRawNames[i]
	}
	internal := ""
	if base.TupleRawName != "" {
		internal = "struct " + base.TupleRawName + suffix
	}
	return ArgumentMarshaling{
		Type:         "tuple" + suffix,
		InternalType: internal,
		Components:   components,
	}
}

// NonIndexed returns the arguments with indexed arguments filtered out.
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Indexed returns only the indexed arguments, in declaration order.
func (arguments Arguments) Indexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// ToCamelCase converts an under-score string to a camel-case string
func ToCamelCase(input string) string {
	parts := strings.Split(input, "_")
	for i, s := range parts {
		if len(s) > 0 {
			parts[i] = strings.ToUpper(s[:1]) + s[1:]
		}
	}
	return strings.Join(parts, "")
}
