package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage database snapshots",
}

var snapshotListCmd = &cobra.Command{
	Use:   "list <project>",
	Short: "List a project's snapshots",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _ := consoleService()
		names, err := svc.ListSnapshots(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

var snapshotName string

var snapshotCreateCmd = &cobra.Command{
	Use:   "create <project>",
	Short: "Take a snapshot of a project's database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _ := consoleService()
		out, err := svc.CreateSnapshot(cmd.Context(), args[0], snapshotName)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore <project> <snapshot>",
	Short: "Restore a snapshot into a project's database",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _ := consoleService()
		out, err := svc.RestoreSnapshot(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	snapshotCreateCmd.Flags().StringVar(&snapshotName, "name", "", "Snapshot name (default: timestamped)")

	snapshotCmd.AddCommand(snapshotListCmd, snapshotCreateCmd, snapshotRestoreCmd)
	rootCmd.AddCommand(snapshotCmd)
}
