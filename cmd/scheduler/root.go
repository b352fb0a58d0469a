package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "scheduler",
		Short: "Meeting room and availability planner",
		Long: `scheduler books meeting rooms at a fixed set of locations and finds
times at which a group of people is free.

It can run as:
  - An HTTP JSON API (serve, the default)
  - One-off commands against the built-in sample data`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(`{{printf "scheduler version %s\n" .Version}}`)

	root.AddCommand(newServeCmd(version))
	root.AddCommand(newLocationsCmd())
	root.AddCommand(newSlotsCmd())
	return root
}
