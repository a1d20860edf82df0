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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// canonicalize resolves every parsed input and rebuilds the canonical
// signature, exercising the full ParseSelector -> NewType pipeline.
func canonicalize(t *testing.T, sel SelectorMarshaling) string {
	t.Helper()
	types := make([]string, len(sel.Inputs))
	for i, input := range sel.Inputs {
		typ, err := NewType(input.Type, "", input.Components)
		require.NoError(t, err, input.Type)
		types[i] = typ.String()
	}
	return sel.Name + "(" + strings.Join(types, ",") + ")"
}

func TestParseSelector(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input     string
		name      string
		canonical string
	}{
		{"noargs()", "noargs", "noargs()"},
		{"simple(uint256,uint256,uint256)", "simple", "simple(uint256,uint256,uint256)"},
		{"withArray(uint256[],address[2],uint8[4][][5])", "withArray", "withArray(uint256[],address[2],uint8[4][][5])"},
		{"singleNest(bytes32,uint8,(uint256,uint256),address)", "singleNest", "singleNest(bytes32,uint8,(uint256,uint256),address)"},
		{"multiNest(address,(uint256[],uint256),((address,bytes32),uint256))", "multiNest", "multiNest(address,(uint256[],uint256),((address,bytes32),uint256))"},
		// tuples carry their own array suffixes
		{"tupleArrays(bool,(address,uint256)[4][],string)", "tupleArrays", "tupleArrays(bool,(address,uint256)[4][],string)"},
		// bare integers widen during canonicalization
		{"transfer(address,uint)", "transfer", "transfer(address,uint256)"},
		{"balance_of$(address)", "balance_of$", "balance_of$(address)"},
	}
	for _, tt := range tests {
		sel, err := ParseSelector(tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.name, sel.Name, tt.input)
		require.Equal(t, "function", sel.Type, tt.input)
		require.Equal(t, tt.canonical, canonicalize(t, sel), tt.input)
	}
}

func TestParseSelectorErrors(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"42balance()",
		"transfer",
		"transfer(",
		"transfer(address",
		"transfer(address))",
		"transfer(address)extra",
		"transfer(address,uint256)[2]",
		"transfer(address,)",
	}
	for _, input := range inputs {
		_, err := ParseSelector(input)
		require.Error(t, err, input)
	}
}
