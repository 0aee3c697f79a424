package cli

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/govalues/fraction/internal/bench"
)

func runTiming(v *viper.Viper, cmd *cobra.Command) error {
	format, err := outputFormat(v)
	if err != nil {
		return err
	}
	sets, err := operandSets(v.GetStringSlice("operands"))
	if err != nil {
		return err
	}
	cfg := bench.Config{
		Iterations: v.GetInt("iterations"),
		Samples:    v.GetInt("samples"),
	}
	glog.V(1).Infof("timing %v operand sets, %v iterations x %v samples", len(sets), cfg.Iterations, cfg.Samples)

	results, err := bench.Timing(cmd.Context(), cfg, sets)
	if err != nil {
		return err
	}
	return bench.RenderTiming(cmd.OutOrStdout(), results, format)
}

// operandSets pairs consecutive "n/d" values into operand sets.
// No values selects the default sets.
func operandSets(values []string) ([]bench.Operands, error) {
	if len(values) == 0 {
		return bench.DefaultOperands, nil
	}
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("operands must come in pairs, got %v values", len(values))
	}
	sets := make([]bench.Operands, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		sets = append(sets, bench.Operands{
			Name: fmt.Sprintf("set%v", i/2+1),
			A:    values[i],
			B:    values[i+1],
		})
	}
	return sets, nil
}

// Timing returns the timing subcommand.
func Timing(v *viper.Viper) *cobra.Command {
	timingCmd := &cobra.Command{
		Use:   "timing",
		Short: "Times fraction sum and product for int32, int64 and bigint",
		Long: `Times the unnormalized sum and product of each operand set with every
integer representation. The fastest sample is reported as time per
operation. Results that differ from BigInt are marked as wrapped, and
operands that do not fit a fixed-width type are reported as n/a.`,
		Example: "fracbench timing --iterations 10000 --operands 1/3,2/7,1000000000/3,2000000000/7",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTiming(v, cmd)
		},
	}

	def := bench.DefaultConfig()
	timingCmd.Flags().Int("iterations", def.Iterations, "operations per sample")
	timingCmd.Flags().Int("samples", def.Samples, "samples per measurement; the fastest one is reported")
	timingCmd.Flags().StringSlice("operands", nil, "fractions as n/d, paired in order; defaults to built-in small, large and huge sets")

	return timingCmd
}
