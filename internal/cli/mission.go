// Package cli contains the tempo subcommands. Rendering happens here; the
// services return plain structured records.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/tempo/internal/wire"
)

// StartCmd returns the start command.
func StartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start [name]",
		Short: "Start a new mission",
		Long: `Start a new mission with the given name.

Any currently running mission is stopped first: at most one mission is
ever running.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == "" {
				return fmt.Errorf("mission name must not be empty")
			}

			application, err := wire.New()
			if err != nil {
				return err
			}
			defer application.Close()

			started, err := application.Missions.Start(context.Background(), name)
			if err != nil {
				return fmt.Errorf("failed to start mission: %w", err)
			}

			fmt.Printf("✓ New mission started: %s\n", started.Name)
			return nil
		},
	}
}

// StatusCmd returns the status command.
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current mission status",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := wire.New()
			if err != nil {
				return err
			}
			defer application.Close()

			active, err := application.Missions.Active(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			if active == nil {
				fmt.Println("No active missions")
				return nil
			}

			marker := color.New(color.FgHiGreen).Sprint("●")
			fmt.Printf("%s Active mission: %s -> %s\n",
				marker, active.Name, application.Missions.Elapsed(*active))
			return nil
		},
	}
}

// StopCmd returns the stop command.
func StopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop all ongoing missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := wire.New()
			if err != nil {
				return err
			}
			defer application.Close()

			closed, err := application.Missions.Stop(context.Background())
			if err != nil {
				return fmt.Errorf("failed to stop missions: %w", err)
			}

			if closed == 0 {
				fmt.Println("No missions were running")
				return nil
			}
			fmt.Println("All ongoing missions have been stopped")
			return nil
		},
	}
}

// ResumeCmd returns the resume command.
func ResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the latest stopped mission",
		Long: `Reopen the most recently started mission.

Elapsed time keeps accumulating from the mission's original start date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := wire.New()
			if err != nil {
				return err
			}
			defer application.Close()

			resumed, err := application.Missions.Resume(context.Background())
			if err != nil {
				return fmt.Errorf("failed to resume mission: %w", err)
			}

			if resumed == nil {
				fmt.Println("No missions to resume")
				return nil
			}
			fmt.Printf("✓ Mission resumed: %s -> %s\n",
				resumed.Name, application.Missions.Elapsed(*resumed))
			return nil
		},
	}
}

func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
