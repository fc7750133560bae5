package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami <token>",
	Short: "Print the session for a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		session, err := svc.Info(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(session)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout <token>",
	Short: "Destroy the session for a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		result, err := svc.Logout(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !result.OK() {
			return fmt.Errorf("partial logout: session deleted=%t cookie cleared=%t",
				result.SessionDeleted, result.CookieCleared)
		}
		fmt.Println("logged out")
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete expired reminders and sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		svc.Sweep()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(sweepCmd)
}
