package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/meeting-planner/internal/catalog"
)

func newLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the built-in locations and their rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.New(catalog.DefaultLocations())
			if err != nil {
				return err
			}
			return printLocations(cmd.OutOrStdout(), cat)
		},
	}
}

func printLocations(w io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROOMS")
	for _, loc := range cat.AllLocations() {
		rooms := make([]string, 0, len(loc.Rooms()))
		for _, room := range loc.Rooms() {
			rooms = append(rooms, fmt.Sprintf("%s(%d)", room.ID(), room.Capacity()))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", loc.ID(), loc.Name(), strings.Join(rooms, " "))
	}
	return tw.Flush()
}
