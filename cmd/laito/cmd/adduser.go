package cmd

import (
	"fmt"

	"github.com/laito/laito/auth"
	"github.com/laito/laito/config"
	"github.com/laito/laito/users"
	"github.com/spf13/cobra"
)

var adduserPassword string

var adduserCmd = &cobra.Command{
	Use:   "adduser <username>",
	Short: "Add a user to the directory file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		settings, err := auth.SettingsFromConfig(cfg)
		if err != nil {
			return err
		}
		usersFile, err := cfg.RequireString(config.KeyUsersFile)
		if err != nil {
			return err
		}

		password, err := resolvePassword(adduserPassword, "Password: ")
		if err != nil {
			return err
		}
		hash, err := auth.NewBcryptHasher(0).Hash(password)
		if err != nil {
			return err
		}

		directory := users.NewFileDirectory(usersFile)
		record, err := directory.Add(cmd.Context(), users.Record{
			settings.UsernameField: args[0],
			settings.PasswordField: hash,
		})
		if err != nil {
			return err
		}
		fmt.Printf("added user %s (id %s)\n", args[0], record.ID())
		return nil
	},
}

func init() {
	adduserCmd.Flags().StringVar(&adduserPassword, "password", "", "password (prompted when omitted)")
	rootCmd.AddCommand(adduserCmd)
}
