package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/govalues/fraction/internal/bench"
)

func runOverflow(v *viper.Viper, cmd *cobra.Command) error {
	format, err := outputFormat(v)
	if err != nil {
		return err
	}
	return bench.RenderOverflow(cmd.OutOrStdout(), bench.Overflow(), format)
}

// Overflow returns the overflow subcommand.
func Overflow(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "overflow",
		Short: "Shows fixed-width results that silently wrap around",
		Long: `Computes the same expressions with int32 or int64 and with BigInt,
and marks every fixed-width result that differs from the exact one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOverflow(v, cmd)
		},
	}
}
