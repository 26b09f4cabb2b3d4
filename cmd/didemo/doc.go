// Command didemo runs the demonstration scenario suite for the di package.
//
// Without arguments it runs every scenario in order and reports PASSED or
// FAILED. Individual scenarios are exposed as subcommands:
//
//	didemo peers      mutually dependent peers driving each other
//	didemo nested     a container nested inside another payload
//	didemo iface      an interface-typed dependency substitution
//	didemo contracts  deliberate contract violations, each expected to fire
//
// The contracts scenario runs with checking enabled and verifies that every
// misuse aborts exactly where the lifecycle contract says it must.
package main
