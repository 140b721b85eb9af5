package main

import (
	"github.com/spf13/cobra"

	"github.com/ddesk/ddesk/internal/ddev"
)

var logsFlags struct {
	service    string
	follow     bool
	tail       int
	timestamps bool
}

var logsCmd = &cobra.Command{
	Use:   "logs <project>",
	Short: "Show logs from a project's containers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done := consoleService()
		svc.StreamLogs(args[0], ddev.LogOptions{
			Service:    logsFlags.service,
			Follow:     logsFlags.follow,
			Tail:       logsFlags.tail,
			Timestamps: logsFlags.timestamps,
		})
		<-done
		return nil
	},
}

func init() {
	logsCmd.Flags().StringVarP(&logsFlags.service, "service", "s", "web", "Service to read logs from")
	logsCmd.Flags().BoolVarP(&logsFlags.follow, "follow", "f", false, "Follow the log stream (Ctrl+C to stop)")
	logsCmd.Flags().IntVar(&logsFlags.tail, "tail", 0, "Number of trailing lines")
	logsCmd.Flags().BoolVarP(&logsFlags.timestamps, "timestamps", "t", false, "Include timestamps")

	rootCmd.AddCommand(logsCmd)
}
