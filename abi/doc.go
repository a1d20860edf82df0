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

// Package abi models contract interfaces described in the JSON-ABI format.
//
// It parses Solidity-style type strings and JSON-ABI documents into an
// immutable in-memory model, and derives the canonical signatures, 4-byte
// selectors and 32-byte event topics from it. Value encoding and decoding is
// deliberately not part of this package; the model stops at structure and
// identifiers.
//
// An ABI parsed once is safe for concurrent readers: nothing mutates it after
// construction.
package abi
