// Package di provides a lifecycle-managed dependency injection container.
//
// It models one payload value per container ([Injected]) plus non-owning
// references between containers ([Required], [Optional]). Wiring is done by
// building a plain dependency-bundle struct and handing it to the container
// before initialization; there is no registry, no reflection graph and no
// automatic resolution.
//
// Design goals:
//   - Explicit wiring: dependencies are assembled intentionally in the
//     composition root and supplied before a payload is brought up.
//   - Clean reinitialization: every Initialize constructs a fresh payload in
//     place, so Initialize/Shutdown/Initialize never leaks state between
//     cycles.
//   - Weak references: peers can depend on each other in both directions;
//     references observe liveness, they never own.
//   - Fail fast: every lifecycle precondition is checked and a violation
//     aborts at the point of detection. Checks can be disabled wholesale for
//     production ([SetCheckMode]), at which point violations are undefined
//     behavior rather than slow paths.
//
// A payload declares its bundle and implements [Payload]:
//
//	type Widget struct {
//	    deps WidgetDeps
//	}
//
//	type WidgetDeps struct {
//	    Cog   di.Required[*Cog]
//	    Spare di.Optional[*Cog]
//	}
//
//	func (w *Widget) Init(deps WidgetDeps, args ...any) error {
//	    w.deps = deps
//	    return nil
//	}
//	func (w *Widget) Shutdown(args ...any) {}
//
// and the composition root wires and cycles it:
//
//	var cog di.Injected[Cog, di.NoDeps, *Cog]
//	var widget di.Injected[Widget, WidgetDeps, *Widget]
//
//	widget.SetDependencies(WidgetDeps{Cog: di.Req[*Cog](&cog)})
//	cog.SetDependencies(di.NoDeps{})
//
//	_ = cog.Initialize()
//	_ = widget.Initialize()
//
//	widget.Value().DoThing()
//
//	widget.Shutdown()
//	cog.Shutdown()
//
// # Threading
//
// Nothing in this package locks, and nothing is atomic. Containers and
// references target single-threaded component graphs wired at startup;
// callers that share a graph across goroutines must impose their own
// exclusion around lifecycle transitions and use.
package di
