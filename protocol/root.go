package protocol

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/datazip-inc/destination-clickhouse/constants"
	"github.com/datazip-inc/destination-clickhouse/logger"
	"github.com/datazip-inc/destination-clickhouse/types"
	"github.com/datazip-inc/destination-clickhouse/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	destinationConfigPath string
	destinationType       string
	noSave                bool
	destinationConfig     *types.WriterConfig

	commands = []*cobra.Command{}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "destination-clickhouse",
	Short: "root command",
	// runs before every subcommand dispatch, not only on bare invocation
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		viper.SetDefault(constants.ConfigFolder, os.TempDir())
		if !noSave {
			configFolder := utils.Ternary(destinationConfigPath == "not-set", os.TempDir(), filepath.Dir(destinationConfigPath)).(string)
			viper.Set(constants.ConfigFolder, configFolder)
		}

		// logger uses CONFIG_FOLDER
		logger.Init()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'destination-clickhouse --help' to display usage guide", args[0])
		}

		return nil
	},
}

func CreateRootCommand() *cobra.Command {
	RootCmd.AddCommand(commands...)
	return RootCmd
}

func init() {
	commands = append(commands, specCmd, checkCmd)
	RootCmd.PersistentFlags().StringVarP(&destinationConfigPath, "destination", "", "not-set", "(Required) Destination config for connector")
	RootCmd.PersistentFlags().StringVarP(&destinationType, "destination-type", "", string(types.ClickHouse), "Destination type for spec")
	RootCmd.PersistentFlags().BoolVarP(&noSave, "no-save", "", false, "(Optional) Flag to skip logging artifacts in file")
	// Disable Cobra CLI's built-in usage and error handling
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}
