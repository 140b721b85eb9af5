package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ddesk/ddesk/internal/config"
	"github.com/ddesk/ddesk/internal/ddev"
	"github.com/ddesk/ddesk/internal/events"
	"github.com/ddesk/ddesk/internal/log"
	"github.com/ddesk/ddesk/internal/ops"
	"github.com/ddesk/ddesk/internal/proc"
	"github.com/ddesk/ddesk/internal/tui"
)

var version = "0.1.0"

func init() {
	// Load .env file if it exists (silent fail if not found)
	_ = godotenv.Load()

	// Initialize logging (enabled via DDESK_DEBUG=1)
	_ = log.Init()
}

func main() {
	defer log.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ddesk",
	Short: "ddesk - terminal UI for DDEV",
	Long: `ddesk is a terminal front-end for the DDEV local development tool.
Run it without arguments for the interactive UI, or use a subcommand
for scripting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

// consoleService wires an operations service to stdout for the
// non-interactive subcommands. The done channel closes when a terminal
// command status arrives, so streaming subcommands know when to exit.
func consoleService() (*ops.Service, chan struct{}) {
	settings, err := config.Load()
	if err != nil {
		settings = config.NewSettings()
	}

	done := make(chan struct{})
	var once sync.Once
	finish := func() { once.Do(func() { close(done) }) }

	console := events.NewConsoleEmitter(os.Stdout)
	em := events.EmitterFunc(func(ev any) {
		console.Emit(ev)
		switch e := ev.(type) {
		case events.CommandStatus:
			if e.Status.Terminal() {
				finish()
			}
		case events.LogStatus:
			if e.Status.Terminal() {
				finish()
			}
		}
	})

	reg := proc.NewRegistry()
	run := ddev.NewRunner(reg, em).
		WithBinary(settings.DdevPath).
		WithEnv(settings.EnvSlice())
	return ops.NewService(reg, run, em), done
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ddesk version %s\n", version)
		svc, _ := consoleService()
		if v, err := svc.Version(cmd.Context()); err == nil {
			fmt.Println(v)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
