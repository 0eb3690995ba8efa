// SPDX-License-Identifier: MIT
// Package: markov/chain
//
// errors.go: sentinel errors for the chain package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Methods attach context with %w (see chainErrorf), never by redefining
//     sentinels with formatted strings.
//   • No method panics at runtime; option constructors may panic on nil input.

package chain

import (
	"errors"
	"fmt"
)

// ErrAllocation indicates that a new entry or transition pair could not be
// created: Ops.Copy returned an error, or WithMaxStates/WithMaxSuccessors
// capacity is exhausted. Nothing is committed when it is returned.
var ErrAllocation = errors.New("chain: allocation failure")

// ErrEmptyModel indicates that no non-terminal entry exists, so no walk can start.
var ErrEmptyModel = errors.New("chain: no non-terminal state to start from")

// ErrBadStartState indicates that GenerateFrom received a Ref that is not
// registered in this Chain.
var ErrBadStartState = errors.New("chain: start state not in registry")

// ErrBadReference indicates that a Ref argument is not registered in this Chain.
var ErrBadReference = errors.New("chain: reference not in registry")

// ErrBadLength indicates a walk length bound smaller than one.
var ErrBadLength = errors.New("chain: max length must be at least 1")

// ErrClosed indicates the Chain was already torn down by Close.
var ErrClosed = errors.New("chain: model is closed")

// ErrNilCompare indicates New received Ops without a Compare function.
var ErrNilCompare = errors.New("chain: compare capability is nil")

// ErrOptionViolation indicates an Option received a meaningless value.
var ErrOptionViolation = errors.New("chain: invalid option value")

// Method names used as error context prefixes.
const (
	methodNew          = "New"
	methodAddState     = "AddState"
	methodRecord       = "RecordTransition"
	methodPickStart    = "PickStart"
	methodPickNext     = "PickNext"
	methodGenerate     = "Generate"
	methodGenerateFrom = "GenerateFrom"
	methodState        = "State"
	methodSuccessors   = "Successors"
	methodClose        = "Close"
)

// chainErrorf wraps err with the method context: "<method>: <msg>: <err>".
// The sentinel stays reachable through errors.Is.
func chainErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
