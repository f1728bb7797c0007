package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "sahara.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestProfileLifecycle(t *testing.T) {
	s := openTestStore(t)

	p, err := s.GetProfile("sess-1")
	require.NoError(t, err)
	assert.Nil(t, p)

	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, s.SaveProfile(Profile{SessionID: "sess-1", UserID: "asha", UpdatedAt: at}))

	p, err = s.GetProfile("sess-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "asha", p.UserID)
	assert.True(t, at.Equal(p.UpdatedAt))

	require.NoError(t, s.DeleteProfile("sess-1"))
	p, err = s.GetProfile("sess-1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSaveProfileRequiresSession(t *testing.T) {
	s := openTestStore(t)
	assert.Error(t, s.SaveProfile(Profile{UserID: "asha"}))
}

func TestProfilesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sahara.db")
	s, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveProfile(Profile{SessionID: "sess-1", UserID: "ravi"}))
	require.NoError(t, s.Close())

	s, err = NewBoltStore(path)
	require.NoError(t, err)
	defer s.Close()

	p, err := s.GetProfile("sess-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "ravi", p.UserID)
}

func TestTranscriptKeepsMostRecentLines(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < maxTranscriptLines+5; i++ {
		require.NoError(t, s.AppendTranscript("sess-1", Line{Sender: "user", Text: fmt.Sprintf("msg %d", i)}))
	}

	lines, err := s.GetTranscript("sess-1")
	require.NoError(t, err)
	require.Len(t, lines, maxTranscriptLines)
	assert.Equal(t, "msg 5", lines[0].Text)
	assert.Equal(t, fmt.Sprintf("msg %d", maxTranscriptLines+4), lines[len(lines)-1].Text)

	empty, err := s.GetTranscript("other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
