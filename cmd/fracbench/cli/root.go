// Package cli implements the fracbench command line tool.
package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/govalues/fraction/internal/bench"
)

// envPrefix is the prefix of environment variables that override flags,
// for example FRACBENCH_ITERATIONS.
const envPrefix = "FRACBENCH"

// Main returns the root command.
// Every call returns an independent command tree with its own configuration.
func Main() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "fracbench",
		Short: "Compares fixed-width and arbitrary-precision fraction arithmetic.",
		Long: `fracbench shows where int32 and int64 fractions silently overflow and
what exact BigInt arithmetic costs in comparison.

Flags can also be set with FRACBENCH_ environment variables or a config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd.Flags())
		},
		Run: func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}

	rootCmd.PersistentFlags().String("config", "", "config file (yaml, json or toml)")
	rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml", "json", "toml")
	rootCmd.PersistentFlags().String("format", string(bench.FormatTable), "output format: table or plain")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(Overflow(v))
	rootCmd.AddCommand(Timing(v))
	rootCmd.AddCommand(Eval(v))

	return rootCmd
}

// loadConfig binds fs to v, then layers environment variables and the
// optional config file underneath the flags.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %v: %w", cfg, err)
		}
		glog.V(1).Infof("using config file %v", v.ConfigFileUsed())
	}
	return nil
}

func outputFormat(v *viper.Viper) (bench.Format, error) {
	return bench.ParseFormat(v.GetString("format"))
}
