package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/dermasight/internal/models"
)

// notifyContext is a test seam for signal.NotifyContext.
var notifyContext = signal.NotifyContext

func (a *App) Messages(ctx context.Context, caseID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msgs, err := a.api.Messages(ctx, caseID)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		printlnFn("No messages yet")
		return nil
	}
	printThread(a.out, msgs)
	return nil
}

func (a *App) Send(ctx context.Context, caseID, text string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msgs, err := a.api.Send(ctx, caseID, text)
	if err != nil {
		return err
	}
	printThread(a.out, msgs)
	return nil
}

// Watch follows the conversation of a case until Ctrl+C, printing only
// messages that were not shown yet.
func (a *App) Watch(ctx context.Context, caseID string) error {
	ctx, stop := notifyContext(ctx, os.Interrupt)
	defer stop()

	printlnFn("Watching case", caseID, "(Ctrl+C to stop)")

	shown := 0
	return a.api.Watch(ctx, caseID, func(msgs []models.Message) {
		if shown > len(msgs) {
			shown = 0
		}
		printThread(a.out, msgs[shown:])
		shown = len(msgs)
	})
}
