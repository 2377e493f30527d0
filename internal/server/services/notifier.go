package services

import (
	"context"

	"github.com/dmitrijs2005/dermasight/internal/logging"
)

// ResetNotifier delivers password reset codes to account owners.
type ResetNotifier interface {
	SendResetCode(ctx context.Context, email, code string) error
}

// LogNotifier writes reset codes to the log instead of sending them.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("module", "reset-notifier")}
}

func (n *LogNotifier) SendResetCode(ctx context.Context, email, code string) error {
	n.log.Info(ctx, "password reset code issued", "email", email, "code", code)
	return nil
}
