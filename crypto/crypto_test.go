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

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeccak256(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"transfer(address,uint256)", "a9059cbb2ab09eb219583f4a59a5d0623ade346d962bcd4e46b11da047c9049b"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, hex.EncodeToString(Keccak256([]byte(tt.input))), tt.input)
	}
}

// Keccak256 concatenates its slices before hashing.
func TestKeccak256Variadic(t *testing.T) {
	t.Parallel()
	whole := Keccak256([]byte("transfer(address,uint256)"))
	split := Keccak256([]byte("transfer("), []byte("address,"), []byte("uint256)"))
	require.Equal(t, whole, split)
}

func TestKeccak256Hash(t *testing.T) {
	t.Parallel()
	h := Keccak256Hash([]byte("Transfer(address,address,uint256)"))
	require.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", h.Hex())
	require.Equal(t, Keccak256([]byte("Transfer(address,address,uint256)")), h.Bytes())
}
