package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeyReturnsSameMutex(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("visitor-1"), lm.GetLock("visitor-1"))
	assert.NotSame(t, lm.GetLock("visitor-1"), lm.GetLock("visitor-2"))
}

func TestGetLock_SerializesCounter(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock := lm.GetLock("shared")
			lock.Lock()
			counter++
			lock.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}
