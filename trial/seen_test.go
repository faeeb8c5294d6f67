package trial

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

func TestSeenSet_AddIfAbsentDedupes(t *testing.T) {
	s := NewSeenSet()
	require.True(t, s.AddIfAbsent(Trial{Victim: 6, Attacker: 5}))
	require.False(t, s.AddIfAbsent(Trial{Victim: 6, Attacker: 5}))
	require.True(t, s.AddIfAbsent(Trial{Victim: 6, Attacker: 2}))
	require.Equal(t, 2, s.Len())
}

func TestSeenSet_ConcurrentAddsCountOnce(t *testing.T) {
	s := NewSeenSet()
	var wg sync.WaitGroup
	var successes int32
	var mu sync.Mutex
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.AddIfAbsent(Trial{Victim: 1, Attacker: asgraph.ASID(2)}) {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.EqualValues(t, 1, successes)
	require.Equal(t, 1, s.Len())
}
