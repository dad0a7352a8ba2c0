package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/goto/spotlight/domain"
	spotlightHTTP "github.com/goto/spotlight/pkg/http"
	"github.com/goto/spotlight/pkg/log"
)

type Config struct {
	URL  string                        `mapstructure:"url" validate:"required,url"`
	Auth *spotlightHTTP.HTTPAuthConfig `mapstructure:"auth,omitempty" validate:"omitempty,dive"`
}

// Notifier delivers notifications to a generic webhook endpoint, one POST per
// recipient.
type Notifier struct {
	httpClient *spotlightHTTP.HTTPClient
	logger     log.Logger
}

type payload struct {
	UserID    string                 `json:"user_id"`
	Type      domain.NotificationType `json:"type"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

func NewNotifier(config *Config, logger log.Logger) (*Notifier, error) {
	httpClient, err := spotlightHTTP.NewHTTPClient(&spotlightHTTP.HTTPClientConfig{
		URL:  config.URL,
		Auth: config.Auth,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing webhook client: %w", err)
	}

	return &Notifier{httpClient: httpClient, logger: logger}, nil
}

func (n *Notifier) Notify(ctx context.Context, notifications []domain.Notification) []error {
	errs := make([]error, 0)
	for _, item := range notifications {
		body, err := json.Marshal(payload{
			UserID:    item.User,
			Type:      item.Message.Type,
			Variables: item.Message.Variables,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("marshaling notification for user %q: %w", item.User, err))
			continue
		}

		n.logger.Debug(ctx, "sending notification", "user", item.User, "type", string(item.Message.Type))
		resp, err := n.httpClient.Post(ctx, "", body)
		if err != nil {
			errs = append(errs, fmt.Errorf("sending notification to user %q: %w", item.User, err))
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			errs = append(errs, fmt.Errorf("notification webhook returned %d for user %q", resp.StatusCode, item.User))
		}
	}

	return errs
}
