package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/govalues/fraction"
)

func runEval(v *viper.Viper, cmd *cobra.Command, args []string) error {
	op := args[0]
	x, err := fraction.ParseRat(args[1])
	if err != nil {
		return err
	}
	y, err := fraction.ParseRat(args[2])
	if err != nil {
		return err
	}

	var z fraction.BigFrac
	switch op {
	case "add":
		z = x.Add(y)
	case "sub":
		z = x.Sub(y)
	case "mul":
		z = x.Mul(y)
	case "quo":
		z, err = x.Quo(y)
	default:
		return fmt.Errorf("unknown operation %q, want add, sub, mul or quo", op)
	}
	if err != nil {
		return err
	}

	if v.GetBool("normalize") {
		z, err = z.Normalize()
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), z)
	return err
}

// Eval returns the eval subcommand.
func Eval(v *viper.Viper) *cobra.Command {
	evalCmd := &cobra.Command{
		Use:   "eval <add|sub|mul|quo> <a> <b>",
		Short: "Evaluates one operation on two fractions with BigInt precision",
		Long: `Evaluates one operation on two fractions written as n/d.
The result is not normalized unless --normalize is given.
Separate negative operands from flags with --.`,
		Example: "fracbench eval --normalize add -- -2/3 2/-5",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(v, cmd, args)
		},
	}

	evalCmd.Flags().Bool("normalize", false, "reduce the result and make its denominator positive")

	return evalCmd
}
