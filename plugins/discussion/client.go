package discussion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	spotlightHTTP "github.com/goto/spotlight/pkg/http"
	"github.com/goto/spotlight/pkg/log"
)

const (
	SourceVisualFeedback = "VISUAL_FEEDBACK"

	EntryTypeSession = "SESSION"
	EntryTypeComment = "COMMENT"
)

// Metadata is the structured pointer the discussion subsystem stores alongside
// a mirrored comment, linking it back to the feedback entity.
type Metadata struct {
	Source            string `json:"source"`
	EntryType         string `json:"entry_type"`
	FeedbackSessionID string `json:"feedback_session_id,omitempty"`
	FeedbackCommentID string `json:"feedback_comment_id,omitempty"`
	FrameID           string `json:"frame_id,omitempty"`
}

// Comment is one mirrored discussion entry for the generic activity feed.
type Comment struct {
	PostID       string   `json:"post_id"`
	AuthorID     string   `json:"author_id"`
	AttachmentID string   `json:"attachment_id,omitempty"`
	Body         RichText `json:"body"`
	Metadata     Metadata `json:"metadata"`
}

// RichText is the minimal rich-document shape the discussion subsystem
// expects for comment bodies.
type RichText struct {
	Type    string     `json:"type"`
	Content []RichNode `json:"content,omitempty"`
}

type RichNode struct {
	Type    string     `json:"type"`
	Text    string     `json:"text,omitempty"`
	Content []RichNode `json:"content,omitempty"`
}

// PlainText wraps a fallback string in the minimal rich-document shape.
func PlainText(text string) RichText {
	return RichText{
		Type: "doc",
		Content: []RichNode{
			{
				Type:    "paragraph",
				Content: []RichNode{{Type: "text", Text: text}},
			},
		},
	}
}

type Client interface {
	CreateComment(ctx context.Context, comment Comment) error
}

type Config struct {
	URL  string                        `mapstructure:"url" validate:"required,url"`
	Auth *spotlightHTTP.HTTPAuthConfig `mapstructure:"auth,omitempty" validate:"omitempty,dive"`
}

// HTTPClient mirrors feedback activity into the discussion subsystem over its
// comment-creation endpoint.
type HTTPClient struct {
	httpClient *spotlightHTTP.HTTPClient
	logger     log.Logger
}

func NewHTTPClient(config *Config, logger log.Logger) (*HTTPClient, error) {
	httpClient, err := spotlightHTTP.NewHTTPClient(&spotlightHTTP.HTTPClientConfig{
		URL:  config.URL,
		Auth: config.Auth,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing discussion client: %w", err)
	}

	return &HTTPClient{httpClient: httpClient, logger: logger}, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, comment Comment) error {
	body, err := json.Marshal(comment)
	if err != nil {
		return fmt.Errorf("marshaling mirrored comment: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/comments", body)
	if err != nil {
		return fmt.Errorf("creating mirrored comment: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("discussion subsystem returned %d", resp.StatusCode)
	}
	return nil
}

// NoopClient discards mirrored comments. Used when no discussion endpoint is
// configured.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (c *NoopClient) CreateComment(ctx context.Context, comment Comment) error {
	return nil
}
