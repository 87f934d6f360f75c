package commands

import (
	"os"
	"os/signal"

	"github.com/google/gops/agent"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/logx"

	"concept-poly/typeerasure/performance"
)

func benchCmd() *cobra.Command {
	var (
		elements int
		reps     int
		ratio    float64
		seed     uint64
		variants []string
		format   string
		withGops bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time virtual-style, type-erased and type-switch dispatch over a large collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := appConfig.Bench
			flags := cmd.Flags()
			if flags.Changed("elements") {
				bc.Elements = elements
			}
			if flags.Changed("reps") {
				bc.Repetitions = reps
			}
			if flags.Changed("ratio") {
				bc.Ratio = ratio
			}
			if flags.Changed("seed") {
				bc.Seed = seed
			}
			if flags.Changed("variant") {
				bc.Variants = variants
			}
			if flags.Changed("format") {
				bc.Format = format
			}
			if err := bc.Validate(); err != nil {
				return err
			}
			vs, err := bc.ParsedVariants()
			if err != nil {
				return err
			}
			f, err := performance.ParseFormat(bc.Format)
			if err != nil {
				return err
			}

			if withGops {
				// 运行期间可以用 gops stack/memstats <pid> 观察进程
				if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
					return errors.Wrap(err, "start gops agent")
				}
				defer agent.Close()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			logx.Infof("bench: elements=%d reps=%d ratio=%.2f seed=%d variants=%v",
				bc.Elements, bc.Repetitions, bc.Ratio, bc.Seed, vs)
			results, err := performance.RunAll(ctx, bc.Harness(), vs...)
			if err != nil {
				logx.Errorf("bench: %v", err)
				return err
			}
			for _, r := range results {
				logx.Infof("bench: %s median=%s per-call=%.3fns", r.Variant, r.Stats.Median, r.Stats.PerCallNs)
			}
			return performance.WriteReport(cmd.OutOrStdout(), f, results)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&elements, "elements", 0, "collection size (default from config: 100000)")
	flags.IntVar(&reps, "reps", 0, "timed passes (default from config: 1001)")
	flags.Float64Var(&ratio, "ratio", 0, "probability of the first concrete type (default from config: 0.5)")
	flags.Uint64Var(&seed, "seed", 0, "random seed, 0 picks one")
	flags.StringSliceVar(&variants, "variant", nil, "variants to run: virtual, erased, switch (default all)")
	flags.StringVarP(&format, "format", "f", "", "report format: text, json, yaml")
	flags.BoolVar(&withGops, "gops", false, "start a gops agent while benchmarking")
	return cmd
}
