package di

// Payload is the contract a type implements so an [Injected] container can
// drive its lifecycle. D is the payload's dependency bundle: a plain struct
// of [Required] and [Optional] references (and any further plain data) that
// the container stores verbatim and hands to Init.
//
// Payloads with no dependencies use [NoDeps] as their bundle.
type Payload[D any] interface {
	// Init receives the bundle stored by SetDependencies plus any extra
	// arguments forwarded verbatim from Initialize. The returned error is
	// the payload's own success signal; the container never interprets it.
	Init(deps D, args ...any) error

	// Shutdown receives the extra arguments forwarded from the container's
	// Shutdown. It must leave the payload safe to discard.
	Shutdown(args ...any)
}

// NoDeps is the distinguished empty dependency bundle, so payloads without
// dependencies can still be wrapped uniformly:
//
//	leaf.SetDependencies(di.NoDeps{})
type NoDeps struct{}

// noCopy makes go vet's copylocks analysis flag copies of a container. A
// container uniquely owns its payload slot; references hold its address.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Injected owns the storage and lifecycle for exactly one payload value.
//
// T is the payload type, D its dependency bundle, and P is *T (spelled out
// so the payload methods are statically required on the pointer receiver):
//
//	var cog di.Injected[Cog, CogDeps, *Cog]
//
// The zero value is a ready, inert container: storage zeroed, no pending
// dependencies, not initialized. The intended cycle is
//
//	cog.SetDependencies(CogDeps{...})
//	err := cog.Initialize(extraArgs...)
//	cog.Value().DoThing()
//	cog.Shutdown()
//
// and the cycle may repeat any number of times. Each Initialize constructs a
// fresh zero T in place, so no state leaks from one cycle into the next. The
// dependency bundle survives Shutdown and need not be re-supplied.
//
// A container must not be copied after first use: references index into its
// storage by address. Copying is flagged by go vet.
//
// No operation is synchronized. Containers target single-threaded component
// graphs wired at startup; concurrent lifecycle transitions or concurrent
// use-during-Shutdown are the caller's responsibility to exclude.
type Injected[T any, D any, P interface {
	*T
	Payload[D]
}] struct {
	noCopy noCopy

	// slot is the payload storage. It holds the zero value of T whenever no
	// live instance exists, so a stale dereference reads as freshly zeroed
	// rather than as plausible leftover state.
	slot T

	// ptr is non-nil exactly while the container is initialized.
	ptr P

	deps        D
	depsSet     bool
	initialized bool
}

// SetDependencies stores the bundle used by the next Initialize. Calling it
// again before Initialize overwrites the previous bundle.
//
// Contract: the container is not currently initialized.
func (c *Injected[T, D, P]) SetDependencies(deps D) {
	check(!c.initialized, func() *ContractError {
		return &ContractError{Op: "SetDependencies", Payload: typeName[T](), Violation: "dependencies replaced while initialized"}
	})

	c.deps = deps
	c.depsSet = true
}

// Initialize constructs a fresh payload in place and calls its Init with the
// stored bundle and args, returning Init's error verbatim.
//
// Contract: SetDependencies has been called, and the container is not
// already initialized.
//
// The container marks itself initialized before Init runs, so a reference
// pointing back at this container resolves during Init even though the
// payload is only partially constructed. Do not reach into an Initialize
// that has not returned.
func (c *Injected[T, D, P]) Initialize(args ...any) error {
	check(c.depsSet, func() *ContractError {
		return &ContractError{Op: "Initialize", Payload: typeName[T](), Violation: "initialized before SetDependencies"}
	})
	check(!c.initialized, func() *ContractError {
		return &ContractError{Op: "Initialize", Payload: typeName[T](), Violation: "initialized twice without Shutdown"}
	})

	// Fresh zero value every cycle; residue from a prior instance never
	// survives into this one.
	var fresh T
	c.slot = fresh
	c.ptr = P(&c.slot)
	c.initialized = true

	return c.ptr.Init(c.deps, args...)
}

// Shutdown tears the payload down: it calls the payload's Shutdown with
// args, returns the storage to the inert zeroed state and clears the live
// handle. The stored dependency bundle survives, so the container can be
// re-initialized without another SetDependencies call.
//
// Calling Shutdown on a container that is not initialized is a no-op, never
// a violation; it is safe to call any number of times.
func (c *Injected[T, D, P]) Shutdown(args ...any) {
	if !c.initialized {
		return
	}

	c.ptr.Shutdown(args...)

	var zero T
	c.slot = zero
	var none P
	c.ptr = none
	c.initialized = false
}

// IsInitialized reports whether the container currently holds a live
// payload instance.
func (c *Injected[T, D, P]) IsInitialized() bool {
	return c.initialized
}

// Value returns the live payload.
//
// Contract: the container is initialized. Using the returned pointer
// concurrently with a Shutdown is unsynchronized and undefined.
func (c *Injected[T, D, P]) Value() P {
	check(c.initialized, func() *ContractError {
		return &ContractError{Op: "Value", Payload: typeName[T](), Violation: "dereferenced while not initialized"}
	})

	return c.ptr
}

// Ptr returns the typed address of the payload slot regardless of lifecycle
// state. It is how references obtain a stable handle before their target is
// live; do not dereference it without separately confirming IsInitialized.
func (c *Injected[T, D, P]) Ptr() P {
	return P(&c.slot)
}

// Close is the scope-exit hook, meant for defer:
//
//	var cog di.Injected[Cog, CogDeps, *Cog]
//	defer cog.Close()
//
// Contract: the container has already been shut down — a container still
// initialized at scope exit is a forgotten Shutdown. With checks disabled
// the forgotten Shutdown degrades to a correct but unchecked teardown,
// because Close runs the shutdown sequence as a safety net either way.
//
// The error result is always nil; it exists so containers satisfy io.Closer
// call sites.
func (c *Injected[T, D, P]) Close() error {
	check(!c.initialized, func() *ContractError {
		return &ContractError{Op: "Close", Payload: typeName[T](), Violation: "still initialized at scope exit (missing Shutdown)"}
	})

	c.Shutdown()
	return nil
}
