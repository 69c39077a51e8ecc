// Package mailer defines the outbound email side effect. Actual delivery is
// out of scope for the engine; the shipped implementation records the send
// in the log, which is also what the traversal tests observe through a fake.
package mailer

import (
	"context"

	"github.com/vk/campaignflow/internal/ctxlog"
)

// Sender performs the email send action for a traversal step.
type Sender interface {
	Send(ctx context.Context, userID, content string) error
}

// LogSender is the simulated sender: it logs the send and succeeds.
type LogSender struct{}

// Send implements Sender.
func (LogSender) Send(ctx context.Context, userID, content string) error {
	ctxlog.FromContext(ctx).Info("📧 Sending email.", "user_id", userID, "content", content)
	return nil
}
