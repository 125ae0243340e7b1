package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/randomizedcoder/ringqueue/internal/combined"
)

const implAll = "all"

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "ringbench",
		Short:        "Benchmark fill/drain cycles of fixed-capacity queues",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), v.GetInt("iterations"), v.GetInt("capacity"), v.GetString("impl"))
		},
	}

	addFlags(cmd.Flags())

	v.SetEnvPrefix("RINGBENCH")
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())

	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	flags.IntP("iterations", "n", 100_000, "number of fill/drain cycles")
	flags.IntP("capacity", "c", 1024, "queue capacity")
	flags.String("impl", implAll, "implementation: "+strings.Join(combined.Targets(), ", ")+" or "+implAll)
}

func resolveImpls(impl string) ([]string, error) {
	if impl == implAll {
		return []string{combined.TargetRing, combined.TargetChannel, combined.TargetLFR}, nil
	}
	for _, name := range combined.Targets() {
		if impl == name {
			return []string{name}, nil
		}
	}
	return nil, errors.Wrapf(combined.ErrUnknownTarget, "--impl %q", impl)
}

func run(w io.Writer, cycles, capacity int, impl string) error {
	if cycles <= 0 {
		return errors.Errorf("iterations must be positive, got %d", cycles)
	}
	names, err := resolveImpls(impl)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Benchmarking fill/drain (%d cycles, capacity=%d)\n", cycles, capacity)
	fmt.Fprintln(w, "─────────────────────────────────────────────────")

	results, err := combined.Run(names, capacity, cycles)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nResults (per push or pop):\n")
	for _, res := range results {
		fmt.Fprintf(w, "  %-8s %v (%.2f ns/op, %d ops)\n", res.Name+":", res.Duration, res.NsPerOp(), res.Ops)
	}

	fmt.Fprintf(w, "\nThroughput:\n")
	for _, res := range results {
		fmt.Fprintf(w, "  %-8s %.2f M ops/sec\n", res.Name+":", res.MOpsPerSec())
	}

	return nil
}
