package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ddesk/ddesk/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change ddesk settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Printf("ddevPath:       %s\n", settings.DdevPath)
		fmt.Printf("defaultLogTail: %d\n", settings.DefaultLogTail)
		fmt.Printf("hiddenProjects: %v\n", settings.HiddenProjects)
		for k, v := range settings.Env {
			fmt.Printf("env:            %s=%s\n", k, v)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a user-level setting (ddev-path or log-tail)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := &config.Settings{}
		switch args[0] {
		case "ddev-path":
			settings.DdevPath = args[1]
		case "log-tail":
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("log-tail must be a number: %w", err)
			}
			settings.DefaultLogTail = n
		default:
			return fmt.Errorf("unknown setting %q (want ddev-path or log-tail)", args[0])
		}
		return config.NewLoader().SaveToUser(settings)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
