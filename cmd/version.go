package cmd

import (
	"fmt"

	"github.com/birmacher/content-gen/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of content-gen`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "content-gen v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
