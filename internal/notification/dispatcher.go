package notification

import (
	"context"
)

const (
	TemplateVerificationCode  = "verification-code"
	TemplatePasswordResetCode = "password-reset-code"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=notification

// Dispatcher hands an email off to the delivery pipeline. Template rendering
// and delivery retries live on the consumer side of the queue; callers treat
// dispatch as best-effort and must not block a response on its failure.
type Dispatcher interface {
	SendEmail(ctx context.Context, recipient, templateKey string, templateContext map[string]string) error
}
