package auth

import (
	"context"
	"log/slog"
)

// Notifier delivers a freshly created reminder code to its user. How the
// code reaches the user (email, SMS, operator handoff) is outside this
// module; delivery failures do not undo the persisted reminder.
type Notifier interface {
	ReminderCreated(ctx context.Context, username, code string) error
}

// LogNotifier logs reminder codes instead of delivering them. It is the
// default notifier for local and CLI deployments where an operator relays
// the code.
type LogNotifier struct {
	log *slog.Logger
}

var _ Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a notifier that logs through log. A nil log uses
// slog.Default().
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ReminderCreated(ctx context.Context, username, code string) error {
	n.log.InfoContext(ctx, "password reminder created",
		slog.String("username", username),
		slog.String("reminder", code))
	return nil
}
