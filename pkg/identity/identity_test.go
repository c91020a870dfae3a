package identity

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_Sequence(t *testing.T) {
	c := NewCounter("id")
	assert.Equal(t, "id1", c.Generate())
	assert.Equal(t, "id2", c.Generate())
	assert.Equal(t, "id3", c.Generate())
}

func TestCounter_ConcurrentUnique(t *testing.T) {
	c := NewCounter(DefaultPrefix)

	const workers, perWorker = 8, 200
	results := make(chan string, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				results <- c.Generate()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for id := range results {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestDefault_IsShared(t *testing.T) {
	a := Default().Generate()
	b := Default().Generate()
	assert.True(t, strings.HasPrefix(a, DefaultPrefix))
	assert.NotEqual(t, a, b)
}

func TestUUID(t *testing.T) {
	id := UUID{Prefix: "node-"}.Generate()
	require.True(t, strings.HasPrefix(id, "node-"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "node-"))
	assert.NoError(t, err)
}

func TestFunc(t *testing.T) {
	g := Func(func() string { return "fixed" })
	assert.Equal(t, "fixed", g.Generate())
}

func TestFromStrategy(t *testing.T) {
	g, err := FromStrategy("", "")
	require.NoError(t, err)
	assert.Same(t, defaultCounter, g)

	g, err = FromStrategy(StrategyCounter, "x")
	require.NoError(t, err)
	assert.Equal(t, "x1", g.Generate())

	g, err = FromStrategy(StrategyCounter, "")
	require.NoError(t, err)
	assert.Equal(t, "uniq1", g.Generate())

	g, err = FromStrategy(StrategyUUID, "")
	require.NoError(t, err)
	assert.IsType(t, UUID{}, g)

	_, err = FromStrategy("sha", "")
	assert.Error(t, err)
}
