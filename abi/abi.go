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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jsonabi/go-jsonabi/common"
)

// The ABI holds information about a contract's context and available
// invokable methods. It will allow you to type check function calls and
// packs data accordingly.
type ABI struct {
	Constructor Method
	Methods     map[string]Method
	Events      map[string]Event
	Errors      map[string]Error

	// Additional "special" functions introduced in solidity v0.6.0.
	// It's separated from the original default fallback. Each contract
	// can only define one fallback and receive function.
	Fallback Method // Note it's also used to represent legacy fallback before v0.6.0
	Receive  Method

	// order remembers the document position of every item so that
	// MarshalJSON can emit them in their original order. The lookup maps
	// alone lose it.
	order []documentItem
}

// documentItem pins one parsed item to its position in the source document.
// name is the resolved (overload-suffixed) map key where one applies.
type documentItem struct {
	kind string
	name string
}

// fieldMarshaling mirrors a single element of the JSON-ABI document on the
// read side.
type fieldMarshaling struct {
	Type    string
	Name    string
	Inputs  []Argument
	Outputs []Argument

	// Status indicator which can be: "pure", "view",
	// "nonpayable" or "payable".
	StateMutability string

	// Deprecated Status indicators, superseded by StateMutability.
	Constant bool // True if function is either pure or view
	Payable  bool // True if function is payable

	// Event relevant indicator represents the event is
	// declared as anonymous.
	Anonymous bool
}

// JSON returns a parsed ABI interface and error if it failed.
func JSON(reader io.Reader) (ABI, error) {
	dec := json.NewDecoder(reader)

	var abi ABI
	if err := dec.Decode(&abi); err != nil {
		return ABI{}, err
	}
	return abi, nil
}

// UnmarshalJSON implements json.Unmarshaler interface. The whole document is
// mapped or none of it is: the first invalid item aborts the parse, and the
// returned error names the item it tripped on.
func (abi *ABI) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	abi.Methods = make(map[string]Method)
	abi.Events = make(map[string]Event)
	abi.Errors = make(map[string]Error)
	abi.order = nil
	for i, item := range raw {
		var field fieldMarshaling
		if err := json.Unmarshal(item, &field); err != nil {
			return fmt.Errorf("abi: item %d: %w", i, err)
		}
		if err := abi.append(field); err != nil {
			return fmt.Errorf("abi: item %d (%s %q): %w", i, field.Type, field.Name, err)
		}
	}
	return nil
}

// append validates a single document item and adds it to the model.
func (abi *ABI) append(field fieldMarshaling) error {
	// an absent parameter list and an empty one are the same declaration
	if field.Inputs == nil {
		field.Inputs = []Argument{}
	}
	if field.Outputs == nil {
		field.Outputs = []Argument{}
	}
	switch field.Type {
	case "constructor":
		mutability, err := normalizeStateMutability(field.StateMutability, field.Constant, field.Payable)
		if err != nil {
			return err
		}
		if err := rejectIndexed(field.Inputs); err != nil {
			return err
		}
		abi.Constructor = NewMethod("", "", Constructor, mutability, field.Constant, field.Payable, field.Inputs, nil)
		abi.order = append(abi.order, documentItem{kind: "constructor"})
	// empty defaults to function according to the abi spec
	case "function", "":
		if field.Name == "" {
			return ErrMissingName
		}
		mutability, err := normalizeStateMutability(field.StateMutability, field.Constant, field.Payable)
		if err != nil {
			return err
		}
		if err := rejectIndexed(field.Inputs); err != nil {
			return err
		}
		if err := rejectIndexed(field.Outputs); err != nil {
			return err
		}
		name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Methods[s]; return ok })
		abi.Methods[name] = NewMethod(name, field.Name, Function, mutability, field.Constant, field.Payable, field.Inputs, field.Outputs)
		abi.order = append(abi.order, documentItem{kind: "function", name: name})
	case "fallback":
		// New introduced function type in v0.6.0, check more detail
		// here https://solidity.readthedocs.io/en/v0.6.0/contracts.html#fallback-function
		if abi.HasFallback() {
			return errors.New("only single fallback is allowed")
		}
		if len(field.Inputs) > 0 {
			return errors.New("fallback declares no parameters")
		}
		mutability, err := normalizeStateMutability(field.StateMutability, field.Constant, field.Payable)
		if err != nil {
			return err
		}
		if mutability != StateMutabilityNonPayable && mutability != StateMutabilityPayable {
			return fmt.Errorf("%w: fallback cannot be %s", ErrInvalidStateMutability, mutability)
		}
		abi.Fallback = NewMethod("", "", Fallback, mutability, field.Constant, field.Payable, nil, nil)
		abi.order = append(abi.order, documentItem{kind: "fallback"})
	case "receive":
		if abi.HasReceive() {
			return errors.New("only single receive is allowed")
		}
		if len(field.Inputs) > 0 {
			return errors.New("receive declares no parameters")
		}
		// receive is implicitly payable; an absent mutability means payable,
		// an explicit one must agree
		if field.StateMutability == "" && !field.Constant && !field.Payable {
			field.StateMutability = StateMutabilityPayable
		}
		mutability, err := normalizeStateMutability(field.StateMutability, field.Constant, field.Payable)
		if err != nil {
			return err
		}
		if mutability != StateMutabilityPayable {
			return errors.New("the statemutability of receive can only be payable")
		}
		abi.Receive = NewMethod("", "", Receive, mutability, false, true, nil, nil)
		abi.order = append(abi.order, documentItem{kind: "receive"})
	case "event":
		if field.Name == "" {
			return ErrMissingName
		}
		name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Events[s]; return ok })
		abi.Events[name] = NewEvent(name, field.Name, field.Anonymous, field.Inputs)
		abi.order = append(abi.order, documentItem{kind: "event", name: name})
	case "error":
		if field.Name == "" {
			return ErrMissingName
		}
		if err := rejectIndexed(field.Inputs); err != nil {
			return err
		}
		// Errors cannot be overloaded or overridden but are inherited,
		// no need to resolve the name conflict here.
		abi.Errors[field.Name] = NewError(field.Name, field.Inputs)
		abi.order = append(abi.order, documentItem{kind: "error", name: field.Name})
	default:
		return fmt.Errorf("could not recognize type %v of field %v", field.Type, field.Name)
	}
	return nil
}

// rejectIndexed refuses the indexed flag anywhere outside event parameters.
func rejectIndexed(args Arguments) error {
	for _, arg := range args {
		if arg.Indexed {
			return fmt.Errorf("%w: parameter %q", ErrIndexedNotAllowed, arg.Name)
		}
	}
	return nil
}

// Document shapes for the write side. The modern stateMutability encoding is
// always emitted, whatever the source document used.
type methodJSON struct {
	Type            string     `json:"type"`
	Name            string     `json:"name"`
	Inputs          []Argument `json:"inputs"`
	Outputs         []Argument `json:"outputs"`
	StateMutability string     `json:"stateMutability"`
}

type constructorJSON struct {
	Type            string     `json:"type"`
	Inputs          []Argument `json:"inputs"`
	StateMutability string     `json:"stateMutability"`
}

type handlerJSON struct {
	Type            string `json:"type"`
	StateMutability string `json:"stateMutability"`
}

type eventJSON struct {
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Inputs    []Argument `json:"inputs"`
	Anonymous bool       `json:"anonymous"`
}

type errorJSON struct {
	Type   string     `json:"type"`
	Name   string     `json:"name"`
	Inputs []Argument `json:"inputs"`
}

// MarshalJSON implements json.Marshaler. Items parsed from a document are
// emitted in their original order; programmatically assembled models fall
// back to a deterministic kind-then-name order.
func (abi ABI) MarshalJSON() ([]byte, error) {
	items := make([]interface{}, 0, len(abi.order))
	for _, it := range abi.itemOrder() {
		switch it.kind {
		case "constructor":
			items = append(items, constructorJSON{
				Type:            "constructor",
				Inputs:          nonNilArgs(abi.Constructor.Inputs),
				StateMutability: abi.Constructor.StateMutability,
			})
		case "function":
			method := abi.Methods[it.name]
			items = append(items, methodJSON{
				Type:            "function",
				Name:            method.RawName,
				Inputs:          nonNilArgs(method.Inputs),
				Outputs:         nonNilArgs(method.Outputs),
				StateMutability: method.StateMutability,
			})
		case "fallback":
			items = append(items, handlerJSON{Type: "fallback", StateMutability: abi.Fallback.StateMutability})
		case "receive":
			items = append(items, handlerJSON{Type: "receive", StateMutability: abi.Receive.StateMutability})
		case "event":
			event := abi.Events[it.name]
			items = append(items, eventJSON{
				Type:      "event",
				Name:      event.RawName,
				Inputs:    nonNilArgs(event.Inputs),
				Anonymous: event.Anonymous,
			})
		case "error":
			errDef := abi.Errors[it.name]
			items = append(items, errorJSON{
				Type:   "error",
				Name:   errDef.Name,
				Inputs: nonNilArgs(errDef.Inputs),
			})
		}
	}
	return json.Marshal(items)
}

// itemOrder returns the document order when one is known, or a synthesized
// deterministic order for models assembled by hand.
func (abi ABI) itemOrder() []documentItem {
	if abi.order != nil {
		return abi.order
	}
	var items []documentItem
	if abi.Constructor.StateMutability != "" {
		items = append(items, documentItem{kind: "constructor"})
	}
	items = appendSorted(items, "function", mapKeys(abi.Methods))
	items = appendSorted(items, "event", mapKeys(abi.Events))
	items = appendSorted(items, "error", mapKeys(abi.Errors))
	if abi.HasFallback() {
		items = append(items, documentItem{kind: "fallback"})
	}
	if abi.HasReceive() {
		items = append(items, documentItem{kind: "receive"})
	}
	return items
}

func appendSorted(items []documentItem, kind string, names []string) []documentItem {
	sort.Strings(names)
	for _, name := range names {
		items = append(items, documentItem{kind: kind, name: name})
	}
	return items
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func nonNilArgs(args Arguments) []Argument {
	if args == nil {
		return []Argument{}
	}
	return args
}

// MethodById looks up a method by the 4-byte id,
// returns nil if none found.
func (abi *ABI) MethodById(sigdata []byte) (*Method, error) {
	if len(sigdata) < 4 {
		return nil, fmt.Errorf("data too short (%d bytes) for abi method lookup", len(sigdata))
	}
	for _, method := range abi.Methods {
		if bytes.Equal(method.ID, sigdata[:4]) {
			return &method, nil
		}
	}
	return nil, fmt.Errorf("no method with id: %#x", sigdata[:4])
}

// EventByID looks an event up by its topic and
// returns it if found.
func (abi *ABI) EventByID(topic common.Hash) (*Event, error) {
	for _, event := range abi.Events {
		if bytes.Equal(event.ID.Bytes(), topic.Bytes()) {
			return &event, nil
		}
	}
	return nil, fmt.Errorf("no event with id: %#x", topic)
}

// ErrorByID looks up an error by the 4-byte id,
// returns nil if none found.
func (abi *ABI) ErrorByID(sigdata [4]byte) (*Error, error) {
	for _, errABI := range abi.Errors {
		if bytes.Equal(errABI.ID[:4], sigdata[:]) {
			return &errABI, nil
		}
	}
	return nil, fmt.Errorf("error with id %x not found", sigdata[:])
}

// Overloads returns every function sharing the given raw name, in document
// order. Each carries its own selector; this library never arbitrates
// selector collisions between distinct signatures.
func (abi *ABI) Overloads(rawName string) []Method {
	var methods []Method
	for _, it := range abi.itemOrder() {
		if it.kind != "function" {
			continue
		}
		if method := abi.Methods[it.name]; method.RawName == rawName {
			methods = append(methods, method)
		}
	}
	return methods
}

// HasFallback returns an indicator whether a fallback function is included.
func (abi *ABI) HasFallback() bool {
	return abi.Fallback.Type == Fallback
}

// HasReceive returns an indicator whether a receive function is included.
func (abi *ABI) HasReceive() bool {
	return abi.Receive.Type == Receive
}
