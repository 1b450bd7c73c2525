package cancellation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlag_ZeroValueUnset(t *testing.T) {
	var f Flag
	require.False(t, f.IsSet())
}

func TestFlag_SetIsIdempotent(t *testing.T) {
	f := NewFlag()

	f.Set()
	require.True(t, f.IsSet())

	f.Set()
	require.True(t, f.IsSet())
}

func TestFlag_ConcurrentSet(t *testing.T) {
	f := NewFlag()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			f.Set()
		}()
	}

	wg.Wait()

	require.True(t, f.IsSet())
}

func TestCanceler(t *testing.T) {
	c := NewCanceler()
	require.False(t, c.Canceled())

	view := New(WithFlags(c.Flag()))
	require.False(t, view.IsDone())

	c.Cancel()

	require.True(t, c.Canceled())
	require.True(t, view.IsDone())

	// Idempotent
	c.Cancel()
	require.True(t, c.Canceled())
}
