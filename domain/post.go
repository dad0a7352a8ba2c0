package domain

type AttachmentType string

const (
	AttachmentTypeImage AttachmentType = "IMAGE"
	AttachmentTypeVideo AttachmentType = "VIDEO"
	AttachmentTypeFile  AttachmentType = "FILE"
)

// Attachment is one entry of a post's ordered attachment list, as exposed by
// the external post subsystem. Only IMAGE attachments become frames.
type Attachment struct {
	ID           string         `json:"id" yaml:"id"`
	Type         AttachmentType `json:"type" yaml:"type"`
	URL          string         `json:"url" yaml:"url"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
	Width        int            `json:"width,omitempty" yaml:"width,omitempty"`
	Height       int            `json:"height,omitempty" yaml:"height,omitempty"`
	Order        int            `json:"order" yaml:"order"`
}

// Post is the read-only projection of a reviewable post that the feedback
// services need: authorship for notifications and the ordered attachments
// frames are derived from. FeedbackDisabled is the per-post override of the
// workspace-wide feedback flag.
type Post struct {
	ID               string        `json:"id" yaml:"id"`
	AuthorID         string        `json:"author_id" yaml:"author_id"`
	WorkspaceID      string        `json:"workspace_id" yaml:"workspace_id"`
	Attachments      []*Attachment `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	FeedbackDisabled bool          `json:"feedback_disabled,omitempty" yaml:"feedback_disabled,omitempty"`
}

// ImageAttachments returns the post's IMAGE attachments sorted by order.
func (p *Post) ImageAttachments() []*Attachment {
	images := []*Attachment{}
	for _, a := range p.Attachments {
		if a.Type == AttachmentTypeImage {
			images = append(images, a)
		}
	}
	for i := 1; i < len(images); i++ {
		for j := i; j > 0 && images[j].Order < images[j-1].Order; j-- {
			images[j], images[j-1] = images[j-1], images[j]
		}
	}
	return images
}
