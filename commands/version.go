package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const VERSION = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Displays the current version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", APP, VERSION)
	},
}
