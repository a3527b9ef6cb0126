package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpacesRemoved(t *testing.T) {
	require.Equal(t, "<p>a</p>", SpacesRemoved(" <p>\n\ta </p> "))
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(t)

	reached := false
	completed := rec.Run(func() {
		require.FailNow(rec, "boom")
		reached = true
	})

	require.False(t, completed)
	require.False(t, reached)
	require.True(t, rec.Failed())
	require.Contains(t, rec.Message(), "boom")

	rec = NewRecorder(t)
	require.True(t, rec.Run(func() {}))
	require.False(t, rec.Failed())
	require.Empty(t, rec.Message())
}
