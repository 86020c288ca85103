package main

import (
	"fmt"

	"github.com/aretw0/emmet"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of emmet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("emmet version %s\n", emmet.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
