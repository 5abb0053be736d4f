package guard_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/disposeguard/guard"
)

func TestFlag(t *testing.T) {
	var f guard.Flag
	assert.False(t, f.IsDisposed())

	assert.True(t, f.Dispose())
	assert.True(t, f.IsDisposed())

	assert.False(t, f.Dispose(), "second dispose must not report a transition")
	assert.True(t, f.IsDisposed())
}

func TestFlagConcurrentDispose(t *testing.T) {
	var (
		f     guard.Flag
		wg    sync.WaitGroup
		wins  atomic.Int32
		total = 32
	)

	for range total {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.Dispose() {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.True(t, f.IsDisposed())
}
