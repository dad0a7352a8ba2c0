package webhook_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/pkg/log"
	"github.com/goto/spotlight/plugins/notifiers/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Notify(t *testing.T) {
	newNotifications := func() []domain.Notification {
		return []domain.Notification{
			{
				User: "user-1",
				Message: domain.NotificationMessage{
					Type:      domain.NotificationTypeFeedbackSession,
					Variables: map[string]interface{}{"post_id": "post-1"},
				},
			},
			{
				User: "user-2",
				Message: domain.NotificationMessage{
					Type: domain.NotificationTypeFeedbackComment,
				},
			},
		}
	}

	t.Run("should post one payload per recipient", func(t *testing.T) {
		var mu sync.Mutex
		var received []map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			var p map[string]interface{}
			require.NoError(t, json.Unmarshal(body, &p))
			mu.Lock()
			received = append(received, p)
			mu.Unlock()
		}))
		defer srv.Close()

		notifier, err := webhook.NewNotifier(&webhook.Config{URL: srv.URL}, log.NewNoop())
		require.NoError(t, err)

		errs := notifier.Notify(context.Background(), newNotifications())

		assert.Empty(t, errs)
		require.Len(t, received, 2)
		assert.Equal(t, "user-1", received[0]["user_id"])
		assert.Equal(t, "FEEDBACK_SESSION", received[0]["type"])
		assert.Equal(t, "post-1", received[0]["variables"].(map[string]interface{})["post_id"])
		assert.Equal(t, "user-2", received[1]["user_id"])
	})

	t.Run("should collect an error per failed delivery", func(t *testing.T) {
		var count int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count++
			if count == 1 {
				w.WriteHeader(http.StatusBadRequest)
			}
		}))
		defer srv.Close()

		notifier, err := webhook.NewNotifier(&webhook.Config{URL: srv.URL}, log.NewNoop())
		require.NoError(t, err)

		errs := notifier.Notify(context.Background(), newNotifications())

		require.Len(t, errs, 1)
		assert.ErrorContains(t, errs[0], "user-1")
	})

	t.Run("should reject an invalid endpoint", func(t *testing.T) {
		_, err := webhook.NewNotifier(&webhook.Config{URL: "not-a-url"}, log.NewNoop())
		assert.Error(t, err)
	})
}
