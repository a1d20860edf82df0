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
	"strings"
)

// SelectorMarshaling is a struct that represents the JSON-serializable form of
// a method selector. It includes the method name, type, and input arguments.
type SelectorMarshaling struct {
	Name   string               `json:"name"`
	Type   string               `json:"type"`
	Inputs []ArgumentMarshaling `json:"inputs"`
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

func parseToken(unescapedSelector string, isIdent bool) (string, string, error) {
	if len(unescapedSelector) == 0 {
		return "", "", ErrEmptyTypeString
	}
	firstChar := unescapedSelector[0]
	position := 1
	if !(isAlpha(firstChar) || (isIdent && isIdentifierSymbol(firstChar))) {
		return "", "", fmt.Errorf("invalid token start: %c", firstChar)
	}
	for position < len(unescapedSelector) {
		char := unescapedSelector[position]
		if !(isAlpha(char) || isDigit(char) || (isIdent && isIdentifierSymbol(char))) {
			break
		}
		position++
	}
	return unescapedSelector[:position], unescapedSelector[position:], nil
}

func parseIdentifier(unescapedSelector string) (string, string, error) {
	return parseToken(unescapedSelector, true)
}

func parseElementaryType(unescapedSelector string) (string, string, error) {
	parsedType, rest, err := parseToken(unescapedSelector, false)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse elementary type: %w", err)
	}
	// handle arrays
	suffix, rest, err := parseArraySuffix(rest)
	if err != nil {
		return "", "", err
	}
	return parsedType + suffix, rest, nil
}

// parseArraySuffix consumes zero or more array suffixes such as "[2][]".
func parseArraySuffix(unescapedSelector string) (string, string, error) {
	var suffix strings.Builder
	rest := unescapedSelector
	for len(rest) > 0 && rest[0] == '[' {
		suffix.WriteByte('[')
		rest = rest[1:]
		for len(rest) > 0 && isDigit(rest[0]) {
			suffix.WriteByte(rest[0])
			rest = rest[1:]
		}
		if len(rest) == 0 || rest[0] != ']' {
			return "", "", fmt.Errorf("%w: expected ']' in %q", ErrUnbalancedBrackets, unescapedSelector)
		}
		suffix.WriteByte(']')
		rest = rest[1:]
	}
	return suffix.String(), rest, nil
}

// parseCompositeType parses a parenthesized tuple type, with optional array
// suffixes applying to the tuple as a whole. The parsed component types are
// returned as a slice; a trailing "[..]"-shaped string element records the
// suffixes for assembleArgs.
func parseCompositeType(unescapedSelector string) ([]interface{}, string, error) {
	if len(unescapedSelector) == 0 || unescapedSelector[0] != '(' {
		return nil, "", fmt.Errorf("%w: expected '(' in %q", ErrUnbalancedBrackets, unescapedSelector)
	}
	rest := unescapedSelector[1:]
	result := make([]interface{}, 0)
	if len(rest) > 0 && rest[0] == ')' {
		// empty tuple
		rest = rest[1:]
	} else {
		parsedType, r, err := parseType(rest)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse type: %w", err)
		}
		result = append(result, parsedType)
		rest = r
		for len(rest) > 0 && rest[0] == ',' {
			parsedType, rest, err = parseType(rest[1:])
			if err != nil {
				return nil, "", fmt.Errorf("failed to parse type: %w", err)
			}
			result = append(result, parsedType)
		}
		if len(rest) == 0 || rest[0] != ')' {
			return nil, "", fmt.Errorf("%w: expected ')' before %q", ErrUnbalancedBrackets, rest)
		}
		rest = rest[1:]
	}
	// array suffixes apply to the tuple as a whole
	suffix, rest, err := parseArraySuffix(rest)
	if err != nil {
		return nil, "", err
	}
	if suffix != "" {
		result = append(result, suffix)
	}
	return result, rest, nil
}

func parseType(unescapedSelector string) (interface{}, string, error) {
	if len(unescapedSelector) == 0 {
		return nil, "", ErrEmptyTypeString
	}
	if unescapedSelector[0] == '(' {
		return parseCompositeType(unescapedSelector)
	}
	return parseElementaryType(unescapedSelector)
}

// assembleArgs converts the raw parse tree into the document representation
// consumed by NewType.
func assembleArgs(args []interface{}) ([]ArgumentMarshaling, error) {
	arguments := make([]ArgumentMarshaling, 0)
	for i, arg := range args {
		// generate dummy name to avoid unmarshal issues
		name := fmt.Sprintf("name%d", i)
		if s, ok := arg.(string); ok {
			arguments = append(arguments, ArgumentMarshaling{Name: name, Type: s, InternalType: s})
		} else if components, ok := arg.([]interface{}); ok {
			subArgs, err := assembleArgs(components)
			if err != nil {
				return nil, fmt.Errorf("failed to assemble components: %w", err)
			}
			tupleType := "tuple"
			if len(subArgs) != 0 && strings.HasPrefix(subArgs[len(subArgs)-1].Type, "[") {
				// the trailing element carries the tuple's array suffixes
				tupleType += subArgs[len(subArgs)-1].Type
				subArgs = subArgs[:len(subArgs)-1]
			}
			arguments = append(arguments, ArgumentMarshaling{Name: name, Type: tupleType, InternalType: tupleType, Components: subArgs})
		} else {
			return nil, fmt.Errorf("failed to assemble args: unexpected type %T", arg)
		}
	}
	return arguments, nil
}

// ParseType resolves a single type expression, such as "uint256[2]" or
// "(address,(bool,string[]))", into a Type. It accepts the same grammar as
// the argument list of ParseSelector and shares its canonicalization: bare
// "uint" and "int" widen to 256 bits.
func ParseType(unescapedType string) (Type, error) {
	if unescapedType == "" {
		return Type{}, ErrEmptyTypeString
	}
	parsed, rest, err := parseType(unescapedType)
	if err != nil {
		return Type{}, fmt.Errorf("failed to parse type %q: %w", unescapedType, err)
	}
	if len(rest) > 0 {
		return Type{}, fmt.Errorf("%w: %q", ErrTrailingCharacters, rest)
	}
	if components, ok := parsed.([]interface{}); ok && len(components) == 0 {
		// the empty tuple has no component list to resolve
		return Type{T: TupleTy, stringKind: "()"}, nil
	}
	args, err := assembleArgs([]interface{}{parsed})
	if err != nil {
		return Type{}, err
	}
	return NewType(args[0].Type, "", args[0].Components)
}

// ParseSelector converts a method selector into a struct that can be JSON
// encoded and consumed by other functions in this package.
// Note, although uppercase letters are not part of the ABI spec, this function
// still accepts it as the general format is valid.
func ParseSelector(unescapedSelector string) (SelectorMarshaling, error) {
	name, rest, err := parseIdentifier(unescapedSelector)
	if err != nil {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector %q: %w", unescapedSelector, err)
	}
	args := []interface{}{}
	if len(rest) >= 2 && rest[0] == '(' && rest[1] == ')' {
		rest = rest[2:]
	} else {
		args, rest, err = parseCompositeType(rest)
		if err != nil {
			return SelectorMarshaling{}, fmt.Errorf("failed to parse selector %q: %w", unescapedSelector, err)
		}
		if len(args) > 0 {
			// an array suffix on the argument list itself is meaningless
			if s, ok := args[len(args)-1].(string); ok && strings.HasPrefix(s, "[") {
				return SelectorMarshaling{}, fmt.Errorf("failed to parse selector %q: %w: %q", unescapedSelector, ErrTrailingCharacters, s)
			}
		}
	}
	if len(rest) > 0 {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector %q: %w: %q", unescapedSelector, ErrTrailingCharacters, rest)
	}

	// Reassemble the fake ABI and construct the JSON
	fakeArgs, err := assembleArgs(args)
	if err != nil {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector: %w", err)
	}

	return SelectorMarshaling{name, "function", fakeArgs}, nil
}
