package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/goto/spotlight/domain"
)

// FrameSignature derives a stable hash over the ordered frame descriptors of a
// post's image attachments. The signature changes when any attachment's url,
// dimensions, or order changes, and is stable otherwise.
func FrameSignature(attachments []*domain.Attachment) string {
	var sb strings.Builder
	for _, a := range attachments {
		fmt.Fprintf(&sb, "%s|%d|%d|%d\n", a.URL, a.Width, a.Height, a.Order)
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}
