package di_test

import (
	"errors"
	"testing"

	"github.com/catid/depinject/di"
	"github.com/stretchr/testify/require"
)

// Shared test payloads and helpers used across the package's test files.

// trace records lifecycle events across containers so tests can assert exact
// ordering.
type trace struct {
	events []string
}

func (tr *trace) add(ev string) { tr.events = append(tr.events, ev) }

// requireViolation asserts fn aborts with a contract violation and returns
// the violation for further assertions.
func requireViolation(t *testing.T, fn func()) (cerr *di.ContractError) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract violation")

		var ok bool
		cerr, ok = r.(*di.ContractError)
		require.True(t, ok, "panic value is not a *di.ContractError: %v", r)
	}()

	fn()
	return nil
}

// gauge is a dependency-free payload with a mutable counter. Optional first
// Init argument: a *trace.
type gauge struct {
	tr    *trace
	count int
}

func (g *gauge) Init(_ di.NoDeps, args ...any) error {
	if len(args) > 0 {
		g.tr = args[0].(*trace)
	}
	if g.tr != nil {
		g.tr.add("gauge init")
	}
	return nil
}

func (g *gauge) Shutdown(...any) {
	if g.tr != nil {
		g.tr.add("gauge shutdown")
	}
}

func (g *gauge) Bump() int {
	g.count++
	return g.count
}

// gaugeBox cuts down on type-argument noise in tests.
type gaugeBox = di.Injected[gauge, di.NoDeps, *gauge]

// tagged carries a value out of its dependency bundle, so tests can observe
// which bundle a cycle actually used.
type tagDeps struct {
	Tag string
}

type tagged struct {
	tag string
}

func (p *tagged) Init(deps tagDeps, _ ...any) error {
	p.tag = deps.Tag
	return nil
}

func (p *tagged) Shutdown(...any) {}

type taggedBox = di.Injected[tagged, tagDeps, *tagged]

// faulty reports failure from its own Init; the container must hand the
// error through untouched.
var errBoom = errors.New("boom")

type faulty struct{}

func (f *faulty) Init(di.NoDeps, ...any) error { return errBoom }
func (f *faulty) Shutdown(...any)              {}

// flusher records the extra arguments its Shutdown receives.
type flusher struct {
	tr *trace
}

func (f *flusher) Init(_ di.NoDeps, args ...any) error {
	f.tr = args[0].(*trace)
	return nil
}

func (f *flusher) Shutdown(args ...any) {
	if len(args) > 0 {
		f.tr.add("flush " + args[0].(string))
	} else {
		f.tr.add("flush")
	}
}

// pinger and ponger form a mutually wired peer pair.
type pingDeps struct {
	Pong  di.Required[*ponger]
	Spare di.Optional[*ponger]
}

type pinger struct {
	deps pingDeps
	tr   *trace
}

func (p *pinger) Init(deps pingDeps, args ...any) error {
	p.deps = deps
	p.tr = args[0].(*trace)
	p.tr.add("pinger init")
	return nil
}

func (p *pinger) Shutdown(...any) { p.tr.add("pinger shutdown") }

func (p *pinger) Ping() {
	p.tr.add("ping")

	p.deps.Pong.Value().Pong()

	if p.deps.Spare.IsAvailable() {
		p.deps.Spare.Value().Pong()
	}
}

type pongDeps struct {
	Ping di.Required[*pinger]
}

type ponger struct {
	deps pongDeps
	tr   *trace
}

func (p *ponger) Init(deps pongDeps, args ...any) error {
	p.deps = deps
	p.tr = args[0].(*trace)
	p.tr.add("ponger init")
	return nil
}

func (p *ponger) Shutdown(...any) { p.tr.add("ponger shutdown") }

func (p *ponger) Pong() { p.tr.add("pong") }

// selfRef observes its own container through a reference during Init,
// pinning down the documented marked-initialized-before-Init ordering.
type selfDeps struct {
	Self di.Optional[*selfRef]
}

type selfRef struct {
	sawLive bool
}

func (s *selfRef) Init(deps selfDeps, _ ...any) error {
	s.sawLive = deps.Self.IsAvailable()
	return nil
}

func (s *selfRef) Shutdown(...any) {}
