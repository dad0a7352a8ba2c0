package notifiers

import (
	"context"

	"github.com/goto/spotlight/domain"
)

// NoopClient drops every notification. Used when no provider is configured.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (c *NoopClient) Notify(ctx context.Context, notifications []domain.Notification) []error {
	return nil
}
