package di

// holder is the weak back-reference a dependency reference keeps to the
// container owning its target. It is only ever used to query liveness, never
// to extend a lifetime.
type holder interface {
	IsInitialized() bool
}

// Optional is a non-owning handle to a payload held inside some [Injected]
// container. It resolves lazily: availability is re-queried from the owning
// container on every use, so a reference bound once stays accurate across
// any number of Shutdown / re-Initialize cycles of its target without being
// rebound.
//
// The zero value is an unbound reference that is never available — the
// natural way to leave an optional dependency out of a bundle.
//
// T may be the payload's pointer type or any interface the payload
// implements, which is how wiring substitutes mocks and alternate
// implementations.
type Optional[T any] struct {
	target T
	owner  holder
}

// IsAvailable reports whether the reference is bound and its owning
// container currently holds a live instance. The answer is never cached.
func (o Optional[T]) IsAvailable() bool {
	return o.owner != nil && o.owner.IsInitialized()
}

// Value returns the live target.
//
// Contract: IsAvailable. A required dependency whose container was never
// initialized, or was shut down, fails here — at the point of use.
func (o Optional[T]) Value() T {
	check(o.IsAvailable(), func() *ContractError {
		return &ContractError{Op: "Value", Payload: typeName[T](), Violation: "dependency dereferenced while unavailable"}
	})

	return o.target
}

// Required is an [Optional] whose binding additionally verifies, at wiring
// time, that a real container was supplied (see [Req]). Use-time behavior is
// identical: liveness is still checked lazily at Value.
//
// The zero value exists transiently during wiring; dereferencing it fails
// the availability check like any unbound reference.
type Required[T any] struct {
	Optional[T]
}

// Opt binds an optional reference to c. R is typically spelled explicitly
// and the container parameters are inferred:
//
//	deps.Spare = di.Opt[*Widget](&widget)
//
// c does not need to be initialized yet: binding is a wiring-time operation,
// resolution happens at use time. A nil c yields an unbound reference.
//
// Contract: the payload pointer satisfies R.
func Opt[R any, T any, D any, P interface {
	*T
	Payload[D]
}](c *Injected[T, D, P]) Optional[R] {
	if c == nil {
		return Optional[R]{}
	}

	target, ok := any(c.Ptr()).(R)
	check(ok, func() *ContractError {
		return &ContractError{Op: "Opt", Payload: typeName[T](), Violation: "payload does not satisfy " + typeName[R]()}
	})
	if !ok {
		return Optional[R]{}
	}

	return Optional[R]{target: target, owner: c}
}

// Req binds a required reference to c.
//
// Contract: c is non-nil — a missing mandatory dependency is caught at
// wiring time rather than at first use. The target does not need to be
// initialized yet; peers are routinely wired to each other before either is
// brought up, and liveness is checked at Value like [Optional].
func Req[R any, T any, D any, P interface {
	*T
	Payload[D]
}](c *Injected[T, D, P]) Required[R] {
	check(c != nil, func() *ContractError {
		return &ContractError{Op: "Req", Payload: typeName[R](), Violation: "required dependency bound to nil container"}
	})
	if c == nil {
		return Required[R]{}
	}

	return Required[R]{Optional: Opt[R](c)}
}
