package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wintrace/wintrace/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wintrace %s (%s, %s/%s)\n",
			config.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
