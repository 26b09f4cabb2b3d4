// Package depinject is a lifecycle-managed dependency injection pattern for Go.
//
// The repository provides a small, generic wrapper that owns the full
// construct/use/destroy lifecycle of one payload value, plus two non-owning
// reference types used to wire payloads to each other:
//
//   - di.Injected[T, D, P]: the lifecycle container. Holds inert storage for
//     one T, a pending dependency bundle D, and a strict three-state
//     lifecycle (no deps / deps set / initialized).
//   - di.Required / di.Optional: weak handles that resolve to a collaborator's
//     live instance only while its container reports initialized.
//
// Wiring is always explicit and caller-supplied: there is no registry, no
// reflection graph, no automatic resolution and no cycle detection. Peers may
// reference each other freely because references never own their targets.
//
// Every lifecycle precondition is enforced by a process-wide contract checker
// that can be disabled wholesale for production builds.
//
// See:
//   - di: the library package
//   - examples/machine: demonstration payload types
//   - cmd/didemo: runnable scenario suite, including deliberate contract
//     violations
package depinject
