package di

import (
	"reflect"
	"strconv"
)

// CheckMode selects whether lifecycle preconditions are enforced at runtime.
//
// Violated preconditions are programmer errors, not runtime conditions: with
// checks enabled a violation aborts immediately via panic, and with checks
// disabled the checks vanish entirely and a violation leads to undefined
// behavior (typically a nil dereference). There is no recovery path in
// between.
type CheckMode uint8

const (
	// ChecksDisabled removes every precondition check and its cost. Intended
	// for production builds once a program's wiring has been exercised with
	// checks on.
	ChecksDisabled CheckMode = iota

	// ChecksEnabled converts every precondition violation into an immediate
	// panic carrying a *ContractError. This is the default.
	ChecksEnabled
)

// String returns the human-readable name of the mode.
func (m CheckMode) String() string {
	switch m {
	case ChecksDisabled:
		return "disabled"
	case ChecksEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// mode is a plain variable on purpose: the library performs no locking or
// atomics anywhere (see the package docs on threading), and the mode is meant
// to be chosen once at process start, before any container is touched.
var mode = ChecksEnabled

// SetCheckMode sets the process-wide contract-checking mode.
//
// Call it once at startup, before creating containers or references. It is
// not synchronized; flipping it while containers are in use is itself a
// programmer error.
func SetCheckMode(m CheckMode) { mode = m }

// Checking returns the current contract-checking mode.
func Checking() CheckMode { return mode }

// ContractError describes a violated lifecycle precondition. It is the panic
// value raised by every check in this package when checking is enabled.
//
// Recovering from it is as unsupported as catching an assertion failure: the
// program reached a state its own wiring promised could not happen.
type ContractError struct {
	// Op is the operation whose precondition was violated, e.g. "Initialize".
	Op string

	// Payload is the payload or reference type the operation ran against.
	Payload string

	// Violation states the precondition that did not hold.
	Violation string
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	// Example: di: contract violation in Initialize on "machine.Cog": initialized twice without Shutdown
	return "di: contract violation in " + e.Op + " on " + strconv.Quote(e.Payload) + ": " + e.Violation
}

// typeName resolves T's display name. Reflection is confined to failure
// paths; the success path of every check is a mode compare and a branch.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// check enforces a precondition. fail is only invoked on the failure path so
// callers can build the error context lazily.
func check(cond bool, fail func() *ContractError) {
	if mode == ChecksEnabled && !cond {
		panic(fail())
	}
}
