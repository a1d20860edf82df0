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

const methoddata = `
[
	{"type": "function", "name": "balance", "stateMutability": "view", "inputs": [], "outputs": []},
	{"type": "function", "name": "send", "inputs": [{"name": "amount", "type": "uint256"}], "outputs": []},
	{"type": "function", "name": "transfer", "inputs": [{"name": "from", "type": "address"}, {"name": "to", "type": "address"}, {"name": "value", "type": "uint256"}], "outputs": [{"name": "success", "type": "bool"}]},
	{"type": "function", "name": "tupleSlice", "inputs": [{"name": "a", "type": "tuple[]", "components": [{"name": "x", "type": "uint256"}, {"name": "y", "type": "uint256"}]}], "outputs": []},
	{"type": "fallback", "stateMutability": "nonpayable"},
	{"type": "receive", "stateMutability": "payable"}
]`

func TestMethodString(t *testing.T) {
	t.Parallel()
	table := []struct {
		method      string
		expectation string
	}{
		{
			method:      "balance",
			expectation: "function balance() view returns()",
		},
		{
			method:      "send",
			expectation: "function send(uint256 amount) returns()",
		},
		{
			method:      "transfer",
			expectation: "function transfer(address from, address to, uint256 value) returns(bool success)",
		},
		{
			method:      "tupleSlice",
			expectation: "function tupleSlice((uint256,uint256)[] a) returns()",
		},
		{
			method:      "fallback",
			expectation: "fallback() returns()",
		},
		{
			method:      "receive",
			expectation: "receive() payable returns()",
		},
	}

	abi, err := JSON(strings.NewReader(methoddata))
	require.NoError(t, err)

	for _, test := range table {
		var got string
		switch test.method {
		case "fallback":
			got = abi.Fallback.String()
		case "receive":
			got = abi.Receive.String()
		default:
			got = abi.Methods[test.method].String()
		}
		require.Equal(t, test.expectation, got, test.method)
	}
}

func TestMethodSig(t *testing.T) {
	t.Parallel()
	abi, err := JSON(strings.NewReader(methoddata))
	require.NoError(t, err)

	cases := map[string]string{
		"balance":    "balance()",
		"send":       "send(uint256)",
		"transfer":   "transfer(address,address,uint256)",
		"tupleSlice": "tupleSlice((uint256,uint256)[])",
	}
	for name, want := range cases {
		require.Equal(t, want, abi.Methods[name].Sig, name)
	}
	// the special handlers have no signature at all
	require.Empty(t, abi.Fallback.Sig)
	require.Empty(t, abi.Receive.Sig)
	require.Nil(t, abi.Fallback.ID)
}
