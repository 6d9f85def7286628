package cmd

import (
	"fmt"

	"github.com/gossipkit/membership"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Print the tuning for each network profile preset",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lan:  ", membership.DefaultLANConfig())
		fmt.Println("wan:  ", membership.DefaultWANConfig())
		fmt.Println("local:", membership.DefaultLocalConfig())
	},
}
