package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd runs the full scenario suite when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "didemo",
	Short: "Demonstration scenarios for the depinject lifecycle container",
	Long: `didemo exercises the di package end to end: peer wiring, nested
containers, interface substitution and a set of deliberate contract
violations that are each expected to abort.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAll(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(
		scenarioCmd("peers", "Mutually dependent peers driving each other", runPeers),
		scenarioCmd("nested", "A container nested inside another payload", runNested),
		scenarioCmd("iface", "An interface-typed dependency substitution", runIface),
		scenarioCmd("contracts", "Deliberate contract violations, each expected to fire", runContracts),
	)
}

// scenarioCmd wraps one scenario function as a cobra subcommand.
func scenarioCmd(use, short string, run func(io.Writer) error) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout())
		},
	}
}

// runAll runs every scenario in order, mirroring the layout of the library's
// original self-test.
func runAll(w io.Writer) error {
	scenarios := []struct {
		name string
		run  func(io.Writer) error
	}{
		{"peers", runPeers},
		{"nested", runNested},
		{"iface", runIface},
		{"contracts", runContracts},
	}

	for _, s := range scenarios {
		fmt.Fprintf(w, "--- %s\n", s.name)
		if err := s.run(w); err != nil {
			fmt.Fprintln(w, "!!! scenarios FAILED !!!")
			return fmt.Errorf("scenario %s: %w", s.name, err)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "scenarios PASSED")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
