package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind <username>",
	Short: "Create a password reminder for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		created, err := svc.RemindPassword(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !created {
			fmt.Println("no reminder created")
			return nil
		}
		fmt.Println("reminder created")
		return nil
	},
}

var passwdPassword string

var passwdCmd = &cobra.Command{
	Use:   "passwd <username> <token-or-reminder>",
	Short: "Change a user's password",
	Long: `Change a user's password, authorized either by a live session token
or by an unexpired reminder code.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		password, err := resolvePassword(passwdPassword, "New password: ")
		if err != nil {
			return err
		}
		result, err := svc.ChangePassword(cmd.Context(), args[0], args[1], password)
		if err != nil {
			return err
		}
		if !result.Updated {
			return fmt.Errorf("password not updated")
		}
		fmt.Println("password updated")
		return nil
	},
}

func init() {
	passwdCmd.Flags().StringVar(&passwdPassword, "password", "", "new password (prompted when omitted)")
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(passwdCmd)
}
