package notice_test

import (
	"testing"
	"time"

	"github.com/niksmo/techmarket/pkg/notice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter(t *testing.T) {
	t.Run("ShowAndAutoHide", func(t *testing.T) {
		c := notice.New(30 * time.Millisecond)
		c.Success("готово")

		m, ok := c.Current()
		require.True(t, ok)
		assert.Equal(t, "готово", m.Text)
		assert.Equal(t, notice.LevelSuccess, m.Level)

		assert.Eventually(t, func() bool {
			_, ok := c.Current()
			return !ok
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("NewMessageReplacesAndRestartsTimer", func(t *testing.T) {
		c := notice.New(40 * time.Millisecond)
		c.Success("первое")
		time.Sleep(25 * time.Millisecond)

		c.Error("второе")
		time.Sleep(25 * time.Millisecond)

		// 50ms after the first message, but the second is still live
		m, ok := c.Current()
		require.True(t, ok)
		assert.Equal(t, "второе", m.Text)
		assert.Equal(t, notice.LevelError, m.Level)
	})

	t.Run("ExplicitHide", func(t *testing.T) {
		c := notice.New(time.Minute)
		c.Success("до свидания")

		c.Hide()
		_, ok := c.Current()
		assert.False(t, ok)
	})

	t.Run("NoMessageInitially", func(t *testing.T) {
		c := notice.New(time.Minute)
		_, ok := c.Current()
		assert.False(t, ok)
	})
}
