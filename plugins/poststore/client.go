package poststore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goto/spotlight/domain"
	spotlightHTTP "github.com/goto/spotlight/pkg/http"
)

type Client interface {
	GetPost(ctx context.Context, id string) (*domain.Post, error)
}

type Config struct {
	URL  string                        `mapstructure:"url" validate:"required,url"`
	Auth *spotlightHTTP.HTTPAuthConfig `mapstructure:"auth,omitempty" validate:"omitempty,dive"`
}

// HTTPClient reads post projections from the post subsystem. Posts are owned
// elsewhere; the feedback services only ever fetch them by id.
type HTTPClient struct {
	httpClient *spotlightHTTP.HTTPClient
}

func NewHTTPClient(config *Config) (*HTTPClient, error) {
	httpClient, err := spotlightHTTP.NewHTTPClient(&spotlightHTTP.HTTPClientConfig{
		URL:  config.URL,
		Auth: config.Auth,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing post store client: %w", err)
	}

	return &HTTPClient{httpClient: httpClient}, nil
}

// GetPost returns the post projection, or nil when the post does not exist.
func (c *HTTPClient) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	resp, err := c.httpClient.Get(ctx, "/posts/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("fetching post %q: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return nil, nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("post subsystem returned %d for post %q", resp.StatusCode, id)
	}

	var post domain.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("decoding post %q: %w", id, err)
	}
	return &post, nil
}
