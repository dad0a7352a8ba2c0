package notifiers

import (
	"context"
	"errors"

	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/pkg/log"
	"github.com/goto/spotlight/plugins/notifiers/webhook"
)

type Client interface {
	Notify(ctx context.Context, notifications []domain.Notification) []error
}

const (
	ProviderTypeWebhook = "webhook"
	ProviderTypeNone    = "none"
)

type Config struct {
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=webhook none"`

	// webhook
	Webhook webhook.Config `mapstructure:"webhook"`
}

func NewClient(config *Config, logger log.Logger) (Client, error) {
	switch config.Provider {
	case ProviderTypeWebhook:
		return webhook.NewNotifier(&config.Webhook, logger)
	case ProviderTypeNone, "":
		return NewNoopClient(), nil
	}

	return nil, errors.New("invalid notifier provider type")
}
