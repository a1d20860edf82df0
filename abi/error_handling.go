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

import "errors"

// Type grammar failures. Every malformed type string maps onto exactly one of
// these sentinels, wrapped with the offending input for context.
var (
	ErrEmptyTypeString    = errors.New("abi: empty type string")
	ErrUnknownType        = errors.New("abi: unknown elementary type")
	ErrInvalidBitWidth    = errors.New("abi: integer bit width must be a multiple of 8 between 8 and 256")
	ErrInvalidBytesSize   = errors.New("abi: fixed bytes size must be between 1 and 32")
	ErrZeroLengthArray    = errors.New("abi: fixed array length must be at least 1")
	ErrUnbalancedBrackets = errors.New("abi: unbalanced brackets in type")
	ErrTrailingCharacters = errors.New("abi: trailing characters after type")
	ErrMissingComponents  = errors.New("abi: tuple type without components")
)

// Structural and document failures.
var (
	ErrIndexedNotAllowed      = errors.New("abi: indexed is only valid on event parameters")
	ErrMissingName            = errors.New("abi: item requires a non-empty name")
	ErrInvalidStateMutability = errors.New("abi: invalid state mutability")
	ErrNoSelector             = errors.New("abi: item does not have a selector")
)
