package main

import (
	"fmt"
	"os"

	"github.com/aretw0/emmet/internal/cli"
	"github.com/aretw0/emmet/internal/menu"
	"github.com/spf13/cobra"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the navigation menu as markup",
	Long:  `Builds the navigation menu and prints it with one element or text per line, indented by depth.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		color, _ := cmd.Flags().GetString("color")
		theme, _ := cmd.Flags().GetString("theme")
		indent, _ := cmd.Flags().GetInt("indent")
		minify, _ := cmd.Flags().GetBool("minify")

		opts := cli.RenderOptions{
			Color:     color,
			ThemePath: theme,
			Indent:    indent,
			Minify:    minify,
			Debug:     debug,
		}
		if err := cli.Render(os.Stdout, menu.Build(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("color", "auto", "Color output: auto, always or never")
	renderCmd.Flags().String("theme", cli.DefaultThemePath, "Theme file (YAML or JSON) with tag/key/value styles")
	renderCmd.Flags().Int("indent", 3, "Spaces per indentation level")
	renderCmd.Flags().Bool("minify", false, "Print minified markup on a single line (disables colors)")

	// Printing the menu is the default when no command is provided.
	rootCmd.Run = renderCmd.Run
	rootCmd.Flags().AddFlagSet(renderCmd.Flags())
}
