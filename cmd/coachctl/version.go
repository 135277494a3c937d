package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pillarcoach/coachengine/internal/buildconfig"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildconfig.VersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "coachctl version %s\n", info["version"])
			fmt.Fprintf(out, "  Git commit: %s\n", info["commit"])
			fmt.Fprintf(out, "  Content version: %s\n", info["content_version"])
			return nil
		},
	}
}
