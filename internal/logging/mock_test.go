package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()
	derived := mock.WithField(FieldSession, "s1").WithError(errors.New("boom"))

	mock.Info("root message")
	derived.Warn("derived message", F(FieldCategory, "Others"))

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.True(t, mock.HasEntry("WARN", "derived message"))

	warn := mock.EntriesByLevel("WARN")
	require.Len(t, warn, 1)
	assert.EqualError(t, warn[0].Error, "boom")

	session, ok := warn[0].FieldValue(FieldSession)
	require.True(t, ok)
	assert.Equal(t, "s1", session)

	category, ok := warn[0].FieldValue(FieldCategory)
	require.True(t, ok)
	assert.Equal(t, "Others", category)
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var mock MockLogger
	mock.Debug("first")
	assert.Len(t, mock.Entries(), 1)
	assert.False(t, mock.HasEntry("INFO", "first"))
}
