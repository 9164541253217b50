package systems

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageLogRecentNewestFirst(t *testing.T) {
	ml := NewMessageLog()
	ml.Add("first")
	ml.Add("second")
	ml.Add("third")

	assert.Equal(t, []string{"third", "second"}, ml.RecentMessages(2))
	assert.Equal(t, []string{"third", "second", "first"}, ml.RecentMessages(10))
}

func TestMessageLogDiscardsOldestPastCap(t *testing.T) {
	ml := NewMessageLog()
	for i := 0; i < ml.MaxMessages+5; i++ {
		ml.Add(fmt.Sprintf("message %d", i))
	}

	assert.Len(t, ml.Messages, ml.MaxMessages)
	assert.Equal(t, "message 5", ml.Messages[0])
}

func TestMessageLogClear(t *testing.T) {
	ml := NewMessageLog()
	ml.Add("stale")
	ml.Clear()

	assert.Empty(t, ml.Messages)
	assert.Empty(t, ml.RecentMessages(5))
}
