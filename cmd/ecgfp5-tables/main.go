// Command ecgfp5-tables regenerates (or checks) the precomputed tables
// used for multiplications of the EcGFp5 conventional generator.
//
// Settings are taken from flags, from environment variables with the
// ECGFP5_TABLES prefix (e.g. ECGFP5_TABLES_OUTPUT), or from an optional
// configuration file.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "ecgfp5_tables"

// The main command describes the tool and defaults to printing the help
// message.
var mainCmd = &cobra.Command{
	Use:   "ecgfp5-tables",
	Short: "Generate the EcGFp5 generator tables.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(viper.GetViper())
	},
	SilenceUsage: true,
}

func main() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	flags := mainCmd.PersistentFlags()
	addGlobalFlags(flags)
	bindFlags(viper.GetViper(), flags)

	mainCmd.AddCommand(generateCmd())
	mainCmd.AddCommand(checkCmd())

	// On failure Cobra prints the error string, so we only need to exit
	// with a non-0 status.
	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}
