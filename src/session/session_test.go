package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthlens/truthlens-client/src/factcheck"
)

func TestAppendKeepsOrder(t *testing.T) {
	s := New()
	s.Append(RoleUser, "first")
	s.Append(RoleSystem, BackendErrorText)
	s.Append(RoleUser, "second")

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, RoleSystem, msgs[1].Role)
	assert.Equal(t, "second", msgs[2].Text)
	assert.NotEqual(t, msgs[0].ID, msgs[2].ID)
}

func TestMessagesReturnsCopy(t *testing.T) {
	s := New()
	s.Append(RoleUser, "original")
	msgs := s.Messages()
	msgs[0].Text = "mutated"
	assert.Equal(t, "original", s.Messages()[0].Text)
}

func TestNextSubmissionMonotonic(t *testing.T) {
	s := New()
	a := s.NextSubmission()
	b := s.NextSubmission()
	assert.Greater(t, b, a)
}

func TestStoreResultLatestWins(t *testing.T) {
	s := New()
	first := s.NextSubmission()
	second := s.NextSubmission()

	stale := &factcheck.Result{Verdict: factcheck.VerdictTrue}
	fresh := &factcheck.Result{Verdict: factcheck.VerdictFalse}

	// the overtaken submission finishes first in either order
	assert.False(t, s.StoreResult(first, stale))
	assert.True(t, s.StoreResult(second, fresh))
	assert.False(t, s.StoreResult(first, stale), "stale response never claims the slot")

	got, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, fresh, got)
}

func TestStoreResultOutOfOrderArrival(t *testing.T) {
	s := New()
	first := s.NextSubmission()
	second := s.NextSubmission()

	fresh := &factcheck.Result{Verdict: factcheck.VerdictMisleading}
	require.True(t, s.StoreResult(second, fresh))
	assert.False(t, s.StoreResult(first, &factcheck.Result{}))

	got, _ := s.Result()
	assert.Equal(t, fresh, got)
}

func TestResultEmptySession(t *testing.T) {
	_, ok := New().Result()
	assert.False(t, ok)
}
