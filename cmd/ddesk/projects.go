package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List DDEV projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _ := consoleService()
		projects, err := svc.ListProjects(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSTATUS\tTYPE\tURL")
		for _, p := range projects {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Status, p.Type, p.PrimaryURL)
		}
		return w.Flush()
	},
}

var startCmd = &cobra.Command{
	Use:   "start <project>",
	Short: "Start a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done := consoleService()
		svc.StartProject(args[0])
		<-done
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop <project>",
	Short: "Stop a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done := consoleService()
		svc.StopProject(args[0])
		<-done
		return nil
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart <project>",
	Short: "Restart a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done := consoleService()
		svc.RestartProject(args[0])
		<-done
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <project>",
	Short: "Delete a project's containers (files are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done := consoleService()
		svc.DeleteProject(args[0])
		<-done
		return nil
	},
}

var poweroffCmd = &cobra.Command{
	Use:   "poweroff",
	Short: "Stop all projects and the router",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done := consoleService()
		svc.Poweroff()
		<-done
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd, startCmd, stopCmd, restartCmd, deleteCmd, poweroffCmd)
}
