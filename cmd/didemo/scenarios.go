package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/catid/depinject/di"
	"github.com/catid/depinject/examples/machine"
)

// runPeers wires a Cog and a Widget to each other before either is brought
// up, initializes both, and lets the Cog drive the Widget, which calls back
// into the Cog. Shutdown order is the caller's choice; here it reverses
// initialization.
func runPeers(w io.Writer) error {
	var cog di.Injected[machine.Cog, machine.CogDeps, *machine.Cog]
	var widget di.Injected[machine.Widget, machine.WidgetDeps, *machine.Widget]

	cog.SetDependencies(machine.CogDeps{
		Widget: di.Req[*machine.Widget](&widget),
		// Spare left unbound: the optional dependency is absent.
	})
	widget.SetDependencies(machine.WidgetDeps{
		Cog: di.Req[*machine.Cog](&cog),
	})

	if err := cog.Initialize(w); err != nil {
		return err
	}
	if err := widget.Initialize(w, 15); err != nil {
		return err
	}

	cog.Value().TurnGear()

	widget.Shutdown()
	cog.Shutdown()
	return nil
}

// runNested brings up a Branch whose Init wires and initializes its inner
// Leaf, then pulls three counter values: 11, 12, 13 for a seed of 10.
func runNested(w io.Writer) error {
	var branch di.Injected[machine.Branch, di.NoDeps, *machine.Branch]

	branch.SetDependencies(di.NoDeps{})
	if err := branch.Initialize(w, 10); err != nil {
		return err
	}

	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "branch.Next() = %d\n", branch.Value().Next())
	}

	branch.Shutdown()
	return nil
}

// runIface binds a Reader's interface-typed required reference to a concrete
// Meter, demonstrating implementation substitution at wiring time.
func runIface(w io.Writer) error {
	var meter di.Injected[machine.Meter, di.NoDeps, *machine.Meter]
	var reader di.Injected[machine.Reader, machine.ReaderDeps, *machine.Reader]

	meter.SetDependencies(di.NoDeps{})
	reader.SetDependencies(machine.ReaderDeps{
		Counter: di.Req[machine.Counter](&meter),
	})

	if err := meter.Initialize(w, 10); err != nil {
		return err
	}
	if err := reader.Initialize(w); err != nil {
		return err
	}

	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "reader.Read() = %d\n", reader.Value().Read())
	}

	meter.Shutdown()
	reader.Shutdown()
	return nil
}

// runContracts triggers each family of lifecycle misuse and verifies the
// contract check fires. A case that completes without a violation fails the
// scenario.
func runContracts(w io.Writer) error {
	cases := []struct {
		name string
		fn   func(io.Writer)
	}{
		{"required dependency bound to nil", contractNilRequired},
		{"Initialize before SetDependencies", contractSkipSetDependencies},
		{"dereference before Initialize", contractUseBeforeInitialize},
		{"dependency used while peer is down", contractSkipPeerInitialize},
		{"missing Shutdown at scope exit", contractForgetShutdown},
	}

	for _, tc := range cases {
		if !violates(tc.fn, w) {
			fmt.Fprintf(w, "!!! violation not fired: %s\n", tc.name)
			return errors.New("expected contract violation did not fire: " + tc.name)
		}
		fmt.Fprintf(w, "*** expected violation fired: %s\n", tc.name)
	}
	return nil
}

// violates runs fn and reports whether it aborted with a contract violation.
// Any other panic is re-raised.
func violates(fn func(io.Writer), w io.Writer) (violated bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*di.ContractError); !ok {
				panic(r)
			}
			violated = true
		}
	}()

	fn(w)
	return false
}

func contractNilRequired(io.Writer) {
	var widget *di.Injected[machine.Widget, machine.WidgetDeps, *machine.Widget]

	// Wiring a mandatory dependency from a container that does not exist is
	// caught at bundle-assembly time.
	_ = machine.CogDeps{
		Widget: di.Req[*machine.Widget](widget),
	}
}

func contractSkipSetDependencies(w io.Writer) {
	var branch di.Injected[machine.Branch, di.NoDeps, *machine.Branch]

	// No SetDependencies call: Initialize must abort before constructing
	// the payload.
	_ = branch.Initialize(w, 10)
}

func contractUseBeforeInitialize(w io.Writer) {
	var branch di.Injected[machine.Branch, di.NoDeps, *machine.Branch]

	branch.SetDependencies(di.NoDeps{})
	branch.Value().Next()
}

func contractSkipPeerInitialize(w io.Writer) {
	var cog di.Injected[machine.Cog, machine.CogDeps, *machine.Cog]
	var widget di.Injected[machine.Widget, machine.WidgetDeps, *machine.Widget]

	cog.SetDependencies(machine.CogDeps{
		Widget: di.Req[*machine.Widget](&widget),
	})
	widget.SetDependencies(machine.WidgetDeps{
		Cog: di.Req[*machine.Cog](&cog),
	})

	// The widget is never initialized. The violation must fire inside
	// TurnGear, at the moment the dead dependency is dereferenced, and not
	// any earlier.
	_ = cog.Initialize(w)

	cog.Value().TurnGear()
}

func contractForgetShutdown(w io.Writer) {
	var branch di.Injected[machine.Branch, di.NoDeps, *machine.Branch]

	branch.SetDependencies(di.NoDeps{})
	_ = branch.Initialize(w, 10)

	// Scope exit without Shutdown.
	_ = branch.Close()
}
