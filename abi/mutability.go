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

import "fmt"

// State mutability values defined by the ABI specification.
const (
	StateMutabilityPure       = "pure"
	StateMutabilityView       = "view"
	StateMutabilityNonPayable = "nonpayable"
	StateMutabilityPayable    = "payable"
)

// normalizeStateMutability reconciles the modern stateMutability field with
// the boolean constant/payable flags emitted by compilers before solidity
// v0.6.0. The modern field wins when both are present. The legacy constant
// flag maps to view, payable to payable; documents carrying neither default
// to nonpayable.
func normalizeStateMutability(mutability string, constant, payable bool) (string, error) {
	switch mutability {
	case StateMutabilityPure, StateMutabilityView, StateMutabilityNonPayable, StateMutabilityPayable:
		return mutability, nil
	case "":
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStateMutability, mutability)
	}
	if constant && payable {
		return "", fmt.Errorf("%w: both constant and payable are set", ErrInvalidStateMutability)
	}
	if constant {
		return StateMutabilityView, nil
	}
	if payable {
		return StateMutabilityPayable, nil
	}
	return StateMutabilityNonPayable, nil
}
