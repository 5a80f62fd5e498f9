package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brd-studio/brd-backend/config"
	"github.com/brd-studio/brd-backend/internal/bootstrap"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Work with stored projects",
	}
	cmd.AddCommand(newProjectsListCmd())
	cmd.AddCommand(newProjectsShowCmd())
	return cmd
}

func newProjectsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stores, err := openStores(ctx)
			if err != nil {
				return err
			}
			defer stores.Close()

			projects, err := stores.Projects.List(ctx)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				color.Yellow("no projects yet")
				return nil
			}

			bold := color.New(color.Bold)
			for _, p := range projects {
				bold.Printf("%s  %s\n", p.ID, p.Name)
				fmt.Printf("    industry=%s versions=%d documents=%d updated=%s\n",
					orDash(p.Industry), len(p.Versions), len(p.DocumentIDs),
					p.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newProjectsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project with its version history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stores, err := openStores(ctx)
			if err != nil {
				return err
			}
			defer stores.Close()

			p, err := stores.Projects.Get(ctx, args[0])
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			bold.Println(p.Name)
			fmt.Printf("id:        %s\n", p.ID)
			fmt.Printf("industry:  %s\n", orDash(p.Industry))
			fmt.Printf("problem:   %s\n", orDash(p.BusinessProblem))
			fmt.Printf("goals:     %s\n", orDash(p.Goals))
			fmt.Printf("created:   %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Printf("documents: %d\n", len(p.DocumentIDs))

			if len(p.Versions) == 0 {
				color.Yellow("no versions generated yet")
				return nil
			}
			bold.Println("versions (newest first):")
			for _, v := range p.Versions {
				fmt.Printf("  %s  %s  requirements=%d gaps=%d\n",
					v.ID, v.CreatedAt.Format("2006-01-02 15:04"),
					len(v.PriorityMatrix), len(v.GapAnalysis.MissingInformation))
			}
			return nil
		},
	}
}

func openStores(ctx context.Context) (*bootstrap.Stores, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return bootstrap.OpenStores(ctx, cfg)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
