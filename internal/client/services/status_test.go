package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_LoadingIsACounter(t *testing.T) {
	st := NewStatus()
	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = st.track(func() error {
			close(started)
			<-release
			return nil
		})
		close(done)
	}()
	<-started

	// a short action finishing while the long one runs
	require.NoError(t, st.track(func() error { return nil }))
	assert.True(t, st.Loading())

	close(release)
	<-done
	assert.False(t, st.Loading())
}

func TestStatus_ErrorLifecycle(t *testing.T) {
	st := NewStatus()
	boom := errors.New("boom")

	err := st.track(func() error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "boom", st.Message())

	require.NoError(t, st.track(func() error { return nil }))
	assert.NoError(t, st.Err())
	assert.Empty(t, st.Message())

	_ = st.track(func() error { return boom })
	st.ClearError()
	assert.NoError(t, st.Err())
}

func TestTracked_ReturnsValue(t *testing.T) {
	st := NewStatus()
	v, err := tracked(st, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
