package service

import "context"

// ResetNotifier defines the interface for delivering password reset links
// to users over an out-of-band channel.
type ResetNotifier interface {
	// SendResetLink delivers the reset link to the given recipient.
	// recipientID is the channel-specific address (e.g., a Telegram chat ID).
	SendResetLink(ctx context.Context, recipientID, link string) error
}
