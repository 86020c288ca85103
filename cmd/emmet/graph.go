package main

import (
	"fmt"
	"os"

	"github.com/aretw0/emmet/internal/cli"
	"github.com/aretw0/emmet/internal/menu"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the menu tree visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the navigation menu tree, including nodes that rendering drops.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.Graph(os.Stdout, menu.Build()); err != nil {
			fmt.Printf("Error generating graph: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
