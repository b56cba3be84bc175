package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tempo/internal/core/mission"
	"github.com/example/tempo/internal/wire"
)

// LsCmd returns the ls command.
func LsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the missions",
		Long: `List the last missions, newest first.

With --from, list every mission started since the given date expression,
plus any still-running mission regardless of its age. The expression may
be absolute ("2024-03-01") or relative ("yesterday", "2 weeks ago") and
must lie in the past.

Examples:
  tempo ls
  tempo ls --limit 25
  tempo ls --from "last monday"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			limit, _ := cmd.Flags().GetInt("limit")

			application, err := wire.New()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx := context.Background()

			var missions []mission.Mission
			if from != "" {
				missions, err = application.Missions.Report(ctx, from)
			} else {
				missions, err = application.Missions.List(ctx, limit)
			}
			if err != nil {
				return err
			}

			if len(missions) == 0 {
				fmt.Println("No missions found")
				return nil
			}

			renderMissions(application, missions)
			return nil
		},
	}

	cmd.Flags().String("from", "", "list missions since this date expression")
	cmd.Flags().Int("limit", mission.DefaultListLimit, "maximum number of missions to list")

	return cmd
}

// InfoCmd returns the info command.
func InfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show store location and mission counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := wire.New()
			if err != nil {
				return err
			}
			defer application.Close()

			counts, err := application.Missions.Counts(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get store info: %w", err)
			}

			fmt.Printf("Store:    %s\n", application.DBPath)
			fmt.Printf("Total:    %d\n", counts.Total)
			fmt.Printf("Running:  %d\n", counts.Running)
			fmt.Printf("Finished: %d\n", counts.Finished)
			return nil
		},
	}
}

func renderMissions(application *wire.App, missions []mission.Mission) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTARTED\tENDED\tSPENT")

	running := color.New(color.FgHiGreen).Sprint("running")
	for _, m := range missions {
		ended := running
		if !m.Ongoing() {
			ended = formatDate(*m.EndDate)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			m.ID, m.Name, formatDate(m.StartDate), ended, application.Missions.Elapsed(m))
	}

	w.Flush()
}
