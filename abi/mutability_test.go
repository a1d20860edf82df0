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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeStateMutability(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mutability string
		constant   bool
		payable    bool
		want       string
		wantErr    bool
	}{
		{mutability: "pure", want: StateMutabilityPure},
		{mutability: "view", want: StateMutabilityView},
		{mutability: "nonpayable", want: StateMutabilityNonPayable},
		{mutability: "payable", want: StateMutabilityPayable},
		// the modern field beats any legacy flag
		{mutability: "view", payable: true, want: StateMutabilityView},
		{mutability: "payable", constant: true, want: StateMutabilityPayable},
		// legacy flags alone
		{constant: true, want: StateMutabilityView},
		{payable: true, want: StateMutabilityPayable},
		{want: StateMutabilityNonPayable},
		// rejects
		{mutability: "sometimes", wantErr: true},
		{constant: true, payable: true, wantErr: true},
	}
	for _, tt := range tests {
		got, err := normalizeStateMutability(tt.mutability, tt.constant, tt.payable)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidStateMutability)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}
