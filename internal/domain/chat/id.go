package chat

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewMessageID returns an ID unique with high probability: millisecond
// timestamp plus a short random suffix. No collision detection.
func NewMessageID(now time.Time) MessageID {
	return MessageID(fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8]))
}
