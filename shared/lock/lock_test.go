package lock_test

import (
	"roomstay/shared/lock"
	"sync"
	"testing"
)

func TestKeyedSerializesSameKey(t *testing.T) {
	keyed := lock.NewKeyed()

	const workers = 50

	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			keyed.Lock("room:1")
			defer keyed.Unlock("room:1")

			counter++
		}()
	}

	wg.Wait()

	if counter != workers {
		t.Errorf("expected counter to be %d, got %d", workers, counter)
	}
}

func TestKeyedAllowsDistinctKeys(t *testing.T) {
	keyed := lock.NewKeyed()

	keyed.Lock("room:1")

	done := make(chan struct{})

	go func() {
		keyed.Lock("room:2")
		keyed.Unlock("room:2")
		close(done)
	}()

	// A distinct key must not block behind room:1.
	<-done

	keyed.Unlock("room:1")
}

func TestKeyedReleasesEntry(t *testing.T) {
	keyed := lock.NewKeyed()

	keyed.Lock("room:1")
	keyed.Unlock("room:1")

	// Reacquiring after release must not deadlock.
	keyed.Lock("room:1")
	keyed.Unlock("room:1")
}

func TestKeyedUnlockUnknownKey(t *testing.T) {
	keyed := lock.NewKeyed()

	// Unlocking a key that was never locked must not panic.
	keyed.Unlock("room:404")
}
