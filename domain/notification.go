package domain

type NotificationType string

const (
	NotificationTypeFeedbackSession  NotificationType = "FEEDBACK_SESSION"
	NotificationTypeFeedbackComment  NotificationType = "FEEDBACK_COMMENT"
	NotificationTypeFeedbackReply    NotificationType = "FEEDBACK_REPLY"
	NotificationTypeFeedbackResolved NotificationType = "FEEDBACK_RESOLVED"
)

type NotificationMessage struct {
	Type      NotificationType       `json:"type" yaml:"type"`
	Variables map[string]interface{} `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// Notification is one message for one recipient, handed to the configured
// notifier client.
type Notification struct {
	User    string              `json:"user" yaml:"user"`
	Message NotificationMessage `json:"message" yaml:"message"`
}
