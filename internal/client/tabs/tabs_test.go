package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []Tab {
	return []Tab{
		{ID: "upload", Title: "Upload"},
		{ID: "download-name", Title: "Download by name"},
		{ID: "download-url", Title: "Download from URL"},
		{ID: "files", Title: "Files"},
	}
}

func activeCount(s *Selector) int {
	n := 0
	for _, t := range s.Tabs() {
		if s.IsActive(t.ID) {
			n++
		}
	}
	return n
}

func TestNewSelector_FirstTabActive(t *testing.T) {
	s, err := NewSelector(sample()...)
	require.NoError(t, err)

	assert.Equal(t, "upload", s.Active().ID)
	assert.True(t, s.IsActive("upload"))
	assert.Equal(t, 1, activeCount(s))
}

func TestNewSelector_Errors(t *testing.T) {
	_, err := NewSelector()
	require.ErrorIs(t, err, ErrNoTabs)

	_, err = NewSelector(Tab{ID: "a"}, Tab{ID: "b"}, Tab{ID: "a"})
	require.Error(t, err)
}

func TestActivate_ExactlyOneActive(t *testing.T) {
	s, err := NewSelector(sample()...)
	require.NoError(t, err)

	for _, tab := range sample() {
		require.NoError(t, s.Activate(tab.ID))
		assert.Equal(t, tab, s.Active())
		assert.Equal(t, 1, activeCount(s), "after activating %s", tab.ID)
	}

	// reactivating the current tab is a no-op
	require.NoError(t, s.Activate("files"))
	require.NoError(t, s.Activate("files"))
	assert.Equal(t, "files", s.Active().ID)
	assert.Equal(t, 1, activeCount(s))
}

func TestActivate_UnknownLeavesStateUnchanged(t *testing.T) {
	s, err := NewSelector(sample()...)
	require.NoError(t, err)
	require.NoError(t, s.Activate("download-url"))

	err = s.Activate("settings")
	require.ErrorIs(t, err, ErrUnknownTab)
	assert.Equal(t, "download-url", s.Active().ID)
	assert.Equal(t, 1, activeCount(s))
}

func TestTabs_ReturnsCopy(t *testing.T) {
	s, err := NewSelector(sample()...)
	require.NoError(t, err)

	got := s.Tabs()
	got[0].ID = "mutated"

	assert.Equal(t, "upload", s.Tabs()[0].ID)
	assert.True(t, s.IsActive("upload"))
}

func TestNewSelector_CopiesInput(t *testing.T) {
	in := sample()
	s, err := NewSelector(in...)
	require.NoError(t, err)

	in[0].ID = "mutated"
	assert.Equal(t, "upload", s.Active().ID)
}
