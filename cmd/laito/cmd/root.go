package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/laito/laito/auth"
	"github.com/laito/laito/config"
	"github.com/laito/laito/store"
	boltstore "github.com/laito/laito/store/bolt"
	filestore "github.com/laito/laito/store/file"
	"github.com/laito/laito/users"
	"github.com/spf13/cobra"
	"go.etcd.io/bbolt"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "laito",
	Short: "Laito is a flat-file authentication service",
	Long: `Manage logins, sessions and password reminders backed by flat-file
or embedded key-value storage.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "path to YAML config file")
	pf.String(config.KeyUsersFile, "", "path to the user directory JSON file")
	pf.String(config.KeySessionsFolder, "", "directory holding session files")
	pf.String(config.KeyRemindersFolder, "", "directory holding reminder files")
	pf.String(config.KeyStorageBackend, "", "record storage backend: file or bolt")
	pf.String(config.KeyStoragePath, "", "bolt database path (backend=bolt)")
}

// buildService wires the configured stores and directory into an auth
// service. The returned closer releases the storage backend.
func buildService(cmd *cobra.Command) (*auth.Service, func(), error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	settings, err := auth.SettingsFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	var (
		sessionRecords  store.Records
		reminderRecords store.Records
		closer          = func() {}
	)
	switch backend := cfg.String(config.KeyStorageBackend); backend {
	case "file":
		sessionsDir, err := cfg.RequireString(config.KeySessionsFolder)
		if err != nil {
			return nil, nil, err
		}
		remindersDir, err := cfg.RequireString(config.KeyRemindersFolder)
		if err != nil {
			return nil, nil, err
		}
		sessionRecords, err = filestore.New(sessionsDir)
		if err != nil {
			return nil, nil, err
		}
		reminderRecords, err = filestore.New(remindersDir)
		if err != nil {
			return nil, nil, err
		}
	case "bolt":
		path, err := cfg.RequireString(config.KeyStoragePath)
		if err != nil {
			return nil, nil, err
		}
		db, err := bbolt.Open(path, 0o600, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("opening bolt db: %w", err)
		}
		sessionRecords = boltstore.New(db, "sessions")
		reminderRecords = boltstore.New(db, "reminders")
		closer = func() { db.Close() }
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}

	usersFile, err := cfg.RequireString(config.KeyUsersFile)
	if err != nil {
		closer()
		return nil, nil, err
	}
	directory := users.NewFileDirectory(usersFile)

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	svc, err := auth.New(directory,
		auth.NewSessionStore(sessionRecords),
		auth.NewReminderStore(reminderRecords, settings.ReminderTTL),
		settings,
		auth.WithLogger(log),
	)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return svc, closer, nil
}
