// gppbench runs the GPP achtemp reduction on synthetic workloads, times the
// kernel and checks the result against the reference values where known.
package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	algogpp "github.com/cwbudde/algo-gpp"
	"github.com/cwbudde/algo-gpp/internal/cpu"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	strategy string
	workers  int
	wisdomIn string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "gppbench",
		Short:         "Benchmark the GPP achtemp reduction kernel",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.strategy, "strategy", "auto", "kernel strategy: auto, straight, fused, parallel")
	pf.IntVar(&flags.workers, "workers", 0, "worker count for the parallel kernel (0 = GOMAXPROCS)")
	pf.StringVar(&flags.wisdomIn, "import-wisdom", "", "load a wisdom file before running")

	root.AddCommand(
		newSizingCmd(flags, "test", "Run the small reference problem (ncouls=512)", algogpp.TestSizing),
		newSizingCmd(flags, "benchmark", "Run the large reference problem (ncouls=32768)", algogpp.BenchmarkSizing),
		newRunCmd(flags),
		newCompareCmd(flags),
	)

	return root
}

func newSizingCmd(flags *rootFlags, name, short string, sizing algogpp.Sizing) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSizing(flags, sizing)
		},
	}
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	sizing := algogpp.TestSizing

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a custom problem size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSizing(flags, sizing)
		},
	}

	cmd.Flags().IntVar(&sizing.NumBands, "bands", sizing.NumBands, "number of bands")
	cmd.Flags().IntVar(&sizing.Nvband, "nvband", sizing.Nvband, "number of valence bands")
	cmd.Flags().IntVar(&sizing.NCouls, "ncouls", sizing.NCouls, "number of plane waves")
	cmd.Flags().IntVar(&sizing.NodesPerGroup, "nodes-per-group", sizing.NodesPerGroup, "nodes per group (derives ngpown)")

	return cmd
}

func runSizing(flags *rootFlags, sizing algogpp.Sizing) error {
	if sizing.NodesPerGroup <= 0 || sizing.NCouls < sizing.NodesPerGroup {
		return fmt.Errorf("nodes-per-group must be in [1, ncouls], got %d", sizing.NodesPerGroup)
	}

	strat, err := algogpp.ParseStrategy(flags.strategy)
	if err != nil {
		return err
	}

	if flags.wisdomIn != "" {
		if err := algogpp.ImportWisdom(flags.wisdomIn); err != nil {
			return err
		}
	}

	totalStart := time.Now()
	p := algogpp.NewSyntheticProblem(sizing)

	printHeader(sizing, p)

	res, err := algogpp.Solve(p, algogpp.WithStrategy(strat), algogpp.WithWorkers(flags.workers))
	if err != nil {
		return err
	}

	fmt.Printf("strategy = %s\n", res.Strategy)

	for iw := 0; iw < p.NW; iw++ {
		ach := res.Achtemp(iw)
		fmt.Printf("achtemp[%d] = (%.6f, %.6f)\n", iw, ach.Real(), ach.Imag())
	}

	fmt.Printf("kernel time = %.6fs, total time = %.6fs\n",
		res.Elapsed.Seconds(), time.Since(totalStart).Seconds())

	ref, ok := algogpp.ReferenceFor(sizing)
	if !ok {
		fmt.Println("no reference values for this sizing, skipping correctness check")
		return nil
	}

	if err := ref.Check(res); err != nil {
		fmt.Println("FAILURE: correctness test failed")
		return err
	}

	fmt.Println("SUCCESS: correctness test passed")

	return nil
}

func printHeader(sizing algogpp.Sizing, p *algogpp.Problem[float64]) {
	fmt.Printf("number_bands = %d\t nvband = %d\t ncouls = %d\t nodes_per_group = %d\t ngpown = %d\t nw = %d\n",
		sizing.NumBands, sizing.Nvband, sizing.NCouls, sizing.NodesPerGroup, p.NGPown, p.NW)
	fmt.Printf("complex value footprint = 16 bytes\n")
	fmt.Printf("allocated memory footprint = %.3f GB\n", float64(p.MemFootprint())/math.Pow(1024, 3))
	fmt.Printf("cpu: %s\n", cpu.Detect().Summary())
}

type compareResult struct {
	strategy algogpp.Strategy
	secPerOp float64
}

func newCompareCmd(flags *rootFlags) *cobra.Command {
	var (
		iters      int
		warmup     int
		wisdomFile string
	)

	sizing := algogpp.TestSizing

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Time every strategy on one problem and report the winner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(flags, sizing, iters, warmup, wisdomFile)
		},
	}

	cmd.Flags().IntVar(&sizing.NumBands, "bands", sizing.NumBands, "number of bands")
	cmd.Flags().IntVar(&sizing.NCouls, "ncouls", sizing.NCouls, "number of plane waves")
	cmd.Flags().IntVar(&sizing.NodesPerGroup, "nodes-per-group", sizing.NodesPerGroup, "nodes per group (derives ngpown)")
	cmd.Flags().IntVar(&iters, "iters", 5, "timed iterations per strategy")
	cmd.Flags().IntVar(&warmup, "warmup", 1, "warmup iterations per strategy")
	cmd.Flags().StringVar(&wisdomFile, "wisdom", "", "export the winning strategy to a wisdom file")

	return cmd
}

func runCompare(flags *rootFlags, sizing algogpp.Sizing, iters, warmup int, wisdomFile string) error {
	if sizing.NodesPerGroup <= 0 || sizing.NCouls < sizing.NodesPerGroup {
		return fmt.Errorf("nodes-per-group must be in [1, ncouls], got %d", sizing.NodesPerGroup)
	}

	if iters < 1 {
		return fmt.Errorf("iters must be at least 1, got %d", iters)
	}

	p := algogpp.NewSyntheticProblem(sizing)

	printHeader(sizing, p)
	fmt.Printf("%10s  %14s\n", "kernel", "s/op")

	strategies := []algogpp.Strategy{
		algogpp.KernelStraight,
		algogpp.KernelFused,
		algogpp.KernelParallel,
	}

	results := make([]compareResult, 0, len(strategies))

	for _, strat := range strategies {
		opts := []algogpp.Option{algogpp.WithStrategy(strat), algogpp.WithWorkers(flags.workers)}

		for i := 0; i < warmup; i++ {
			if _, err := algogpp.Solve(p, opts...); err != nil {
				return err
			}
		}

		var total time.Duration

		for i := 0; i < iters; i++ {
			res, err := algogpp.Solve(p, opts...)
			if err != nil {
				return err
			}

			total += res.Elapsed
		}

		secPerOp := total.Seconds() / float64(iters)
		results = append(results, compareResult{strategy: strat, secPerOp: secPerOp})
		fmt.Printf("%10s  %14.6f\n", strat, secPerOp)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].secPerOp < results[j].secPerOp
	})

	best := results[0]
	fmt.Printf("best: %s\n", best.strategy)

	algogpp.RecordDecision(sizing.NumBands, sizing.NGPown(), sizing.NCouls, best.strategy)

	if wisdomFile != "" {
		if err := algogpp.ExportWisdom(wisdomFile); err != nil {
			return err
		}

		fmt.Printf("wisdom exported to %s\n", wisdomFile)
	}

	return nil
}
