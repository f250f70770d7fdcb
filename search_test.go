package xpatlat_test

import (
	"testing"
	"time"

	"github.com/fwojciec/xpatlat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchURL(t *testing.T) {
	t.Parallel()

	t.Run("appends encoded query without re-encoding", func(t *testing.T) {
		t.Parallel()

		got := xpatlat.SearchURL("", "%22jon%20jones%22%20lang%3Atr")

		assert.Equal(t, "https://x.com/search?q=%22jon%20jones%22%20lang%3Atr", got)
	})

	t.Run("uses custom base", func(t *testing.T) {
		t.Parallel()

		got := xpatlat.SearchURL("http://127.0.0.1:8080/search?q=", "golang")

		assert.Equal(t, "http://127.0.0.1:8080/search?q=golang", got)
	})
}

func TestPaginationPlan(t *testing.T) {
	t.Parallel()

	t.Run("default plan", func(t *testing.T) {
		t.Parallel()

		plan := xpatlat.DefaultPaginationPlan()

		assert.Equal(t, 5*time.Second, plan.InitialSettle)
		assert.Equal(t, 5, plan.Rounds)
		assert.Equal(t, 3*time.Second, plan.Settle)
		assert.InDelta(t, 3000.0, plan.ScrollOffset, 0)
		assert.Equal(t, 20*time.Second, plan.Duration())
		require.NoError(t, plan.Validate())
	})

	t.Run("zero rounds is valid", func(t *testing.T) {
		t.Parallel()

		plan := xpatlat.PaginationPlan{InitialSettle: time.Second}

		require.NoError(t, plan.Validate())
		assert.Equal(t, time.Second, plan.Duration())
	})

	t.Run("rejects negative rounds", func(t *testing.T) {
		t.Parallel()

		err := xpatlat.PaginationPlan{Rounds: -1}.Validate()

		assert.Equal(t, xpatlat.EINVALID, xpatlat.ErrorCode(err))
	})

	t.Run("rejects negative delays", func(t *testing.T) {
		t.Parallel()

		err := xpatlat.PaginationPlan{Settle: -time.Second}.Validate()

		assert.Equal(t, xpatlat.EINVALID, xpatlat.ErrorCode(err))
	})
}

func TestRunState_Terminal(t *testing.T) {
	t.Parallel()

	assert.True(t, xpatlat.StateDone.Terminal())
	assert.True(t, xpatlat.StateFailed.Terminal())
	assert.False(t, xpatlat.StateExtracting.Terminal())
}
