package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var addonCmd = &cobra.Command{
	Use:   "addon",
	Short: "Manage project add-ons",
}

var addonListFlags struct {
	all bool
}

var addonListCmd = &cobra.Command{
	Use:   "list [project]",
	Short: "List installed add-ons, or the public registry with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _ := consoleService()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		if addonListFlags.all {
			registry, err := svc.FetchAddonRegistry(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "ADDON\tVERSION\tSTARS\tDESCRIPTION")
			for _, a := range registry.Addons {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", a.FullName(), a.TagName, a.Stars, a.Description)
			}
			return w.Flush()
		}

		if len(args) == 0 {
			return fmt.Errorf("a project name is required unless --all is given")
		}
		addons, err := svc.ListInstalledAddons(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "NAME\tVERSION\tREPOSITORY")
		for _, a := range addons {
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, a.Version, a.Repository)
		}
		return w.Flush()
	},
}

var addonGetCmd = &cobra.Command{
	Use:   "get <project> <user/repo>",
	Short: "Install an add-on into a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done := consoleService()
		svc.InstallAddon(args[0], args[1])
		<-done
		return nil
	},
}

var addonRemoveCmd = &cobra.Command{
	Use:   "remove <project> <addon>",
	Short: "Remove an installed add-on",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done := consoleService()
		svc.RemoveAddon(args[0], args[1])
		<-done
		return nil
	},
}

func init() {
	addonListCmd.Flags().BoolVar(&addonListFlags.all, "all", false, "List the public add-on registry")

	addonCmd.AddCommand(addonListCmd, addonGetCmd, addonRemoveCmd)
	rootCmd.AddCommand(addonCmd)
}
