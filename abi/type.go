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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
	FunctionTy
)

// Type is the resolved form of a Solidity ABI type. It is immutable once
// built; signatures are derived from its canonical stringKind.
type Type struct {
	Elem *Type // nested element type for arrays and slices
	Size int
	T    byte // our own type checking, using the enumerator above

	stringKind string // holds the canonical string for deriving signatures

	// Tuple relative fields
	TupleRawName  string   // Raw struct name defined in source code, may be empty.
	TupleElems    []*Type  // Type information of all tuple fields
	TupleRawNames []string // Raw field name of all tuple fields
}

var (
	// typeRegex parses the abi sub types
	typeRegex = regexp.MustCompile("([a-zA-Z]+)(([0-9]+)(x([0-9]+))?)?")

	// arraySuffixRegex validates a single trailing array suffix
	arraySuffixRegex = regexp.MustCompile(`^\[[0-9]*\]$`)
)

// NewType resolves the abi type given in t, together with the component list
// accompanying tuple types in the JSON document, into a Type. Bare "uint" and
// "int" are accepted and canonicalized to their 256-bit forms, so the
// resulting stringKind is always an explicit-width rendering.
func NewType(t string, internalType string, components []ArgumentMarshaling) (typ Type, err error) {
	if t == "" {
		return Type{}, ErrEmptyTypeString
	}
	// check that array brackets are equal if they exist
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, fmt.Errorf("%w: %q", ErrUnbalancedBrackets, t)
	}
	typ.stringKind = t

	// if there are brackets, get ready to go into slice/array mode and
	// recursively create the type
	if strings.Count(t, "[") != 0 {
		// Note internalType can be empty here.
		subInternal := internalType
		if i := strings.LastIndex(internalType, "["); i != -1 {
			subInternal = subInternal[:i]
		}
		// recursively embed the type
		i := strings.LastIndex(t, "[")
		embeddedType, err := NewType(t[:i], subInternal, components)
		if err != nil {
			return Type{}, err
		}
		// grab the last cell and create a type from there
		sliced := t[i:]
		if !arraySuffixRegex.MatchString(sliced) {
			return Type{}, fmt.Errorf("%w: %q", ErrUnbalancedBrackets, t)
		}
		if sliced == "[]" {
			// is a slice
			typ.T = SliceTy
			typ.Elem = &embeddedType
			typ.stringKind = embeddedType.stringKind + sliced
		} else {
			// is an array
			typ.T = ArrayTy
			typ.Elem = &embeddedType
			typ.Size, err = strconv.Atoi(sliced[1 : len(sliced)-1])
			if err != nil {
				return Type{}, fmt.Errorf("abi: error parsing array size: %v", err)
			}
			if typ.Size < 1 {
				return Type{}, fmt.Errorf("%w: %q", ErrZeroLengthArray, t)
			}
			typ.stringKind = embeddedType.stringKind + sliced
		}
		return typ, nil
	}
	// contract references encode as plain addresses
	if strings.HasPrefix(internalType, "contract ") {
		typ.Size = 20
		typ.T = AddressTy
		typ.stringKind = "address"
		return typ, nil
	}
	// parse the type and size of the abi-type.
	matches := typeRegex.FindAllStringSubmatch(t, -1)
	if len(matches) == 0 {
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	parsedType := matches[0]
	if parsedType[0] != t {
		return Type{}, fmt.Errorf("%w: %q", ErrTrailingCharacters, t)
	}

	// varSize is the size of the variable
	var varSize int
	if len(parsedType[3]) > 0 {
		// NxM widths belong to the fixed-point family, which never made it
		// into deployed ABIs
		if len(parsedType[5]) > 0 {
			return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
		}
		var err error
		varSize, err = strconv.Atoi(parsedType[2])
		if err != nil {
			return Type{}, fmt.Errorf("abi: error parsing variable size: %v", err)
		}
	}
	// varType is the parsed abi type
	switch varType := parsedType[1]; varType {
	case "int", "uint":
		if len(parsedType[3]) == 0 {
			// bare int/uint canonicalize to their widest form
			varSize = 256
		}
		if varSize == 0 || varSize > 256 || varSize%8 != 0 {
			return Type{}, fmt.Errorf("%w: %q", ErrInvalidBitWidth, t)
		}
		typ.Size = varSize
		if varType == "int" {
			typ.T = IntTy
		} else {
			typ.T = UintTy
		}
		typ.stringKind = varType + strconv.Itoa(varSize)
	case "bool":
		typ.T = BoolTy
	case "address":
		typ.Size = 20
		typ.T = AddressTy
	case "string":
		typ.T = StringTy
	case "bytes":
		if len(parsedType[3]) == 0 {
			typ.T = BytesTy
		} else {
			if varSize < 1 || varSize > 32 {
				return Type{}, fmt.Errorf("%w: %q", ErrInvalidBytesSize, t)
			}
			typ.T = FixedBytesTy
			typ.Size = varSize
		}
	case "tuple":
		if len(components) == 0 {
			return Type{}, fmt.Errorf("%w: %q", ErrMissingComponents, t)
		}
		var (
			elems      []*Type
			names      []string
			expression string // canonical parameter expression
		)
		expression += "("
		for idx, c := range components {
			cType, err := NewType(c.Type, c.InternalType, c.Components)
			if err != nil {
				return Type{}, fmt.Errorf("abi: invalid component %d of tuple: %w", idx, err)
			}
			elems = append(elems, &cType)
			names = append(names, c.Name)
			expression += cType.stringKind
			if idx != len(components)-1 {
				expression += ","
			}
		}
		expression += ")"

		typ.TupleElems = elems
		typ.TupleRawNames = names
		typ.T = TupleTy
		typ.stringKind = expression

		const structPrefix = "struct "
		// After solidity 0.5.10, a new field of abi "internalType"
		// is introduced. From that we can obtain the struct name
		// user defined in the source code.
		if internalType != "" && strings.HasPrefix(internalType, structPrefix) {
			// Foo.Bar type definition is not allowed in golang,
			// convert the format to FooBar
			typ.TupleRawName = strings.ReplaceAll(internalType[len(structPrefix):], ".", "")
		}
	case "function":
		typ.T = FunctionTy
		typ.Size = 24 // 20 byte address + 4 byte selector
	default:
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return typ, nil
}

// String implements Stringer and returns the canonical rendering of the type,
// the exact form hashed into selectors and topics.
func (t Type) String() string {
	return t.stringKind
}
