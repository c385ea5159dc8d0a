package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aprilandbutter/storefront/internal/entity"
)

func TestIncrementSaveFromSeed(t *testing.T) {
	c := NewSaveCounter(entity.DefaultCatalog().Seeds())

	assert.Equal(t, 25, c.IncrementSave("double-chocolate-chip-cookies"))
	assert.Equal(t, 26, c.IncrementSave("double-chocolate-chip-cookies"))
}

func TestIncrementSaveUnseenStartsAtZero(t *testing.T) {
	c := NewSaveCounter(entity.DefaultCatalog().Seeds())

	assert.Equal(t, 1, c.IncrementSave("new-unseen-product"))
	assert.Equal(t, 2, c.IncrementSave("new-unseen-product"))
	assert.Equal(t, 1, c.IncrementSave(""))
}

func TestCountDoesNotMutate(t *testing.T) {
	c := NewSaveCounter(map[string]int{"smores-cookies": 31})

	n, ok := c.Count("smores-cookies")
	assert.True(t, ok)
	assert.Equal(t, 31, n)

	_, ok = c.Count("lemon-bars")
	assert.False(t, ok)
	_, ok = c.Count("lemon-bars")
	assert.False(t, ok)
	assert.Len(t, c.Snapshot(), 1)
}

func TestIncrementSaveFromBase(t *testing.T) {
	c := NewSaveCounter(nil)

	assert.Equal(t, 23, c.IncrementSaveFrom("lemon-bars", 22))
	assert.Equal(t, 24, c.IncrementSaveFrom("lemon-bars", 22))
	assert.Equal(t, 25, c.IncrementSaveFrom("lemon-bars", 0))
}

func TestSeedsAreCopied(t *testing.T) {
	seeds := map[string]int{"fudgy-oreo-brownies": 29}
	c := NewSaveCounter(seeds)
	seeds["fudgy-oreo-brownies"] = 1000

	c.IncrementSave("fudgy-oreo-brownies")

	n, _ := c.Count("fudgy-oreo-brownies")
	assert.Equal(t, 30, n)
	assert.Equal(t, 1000, seeds["fudgy-oreo-brownies"])
}

func TestIncrementSaveConcurrent(t *testing.T) {
	c := NewSaveCounter(map[string]int{"chewy-funfetti-blondies": 18})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.IncrementSave("chewy-funfetti-blondies")
		}()
	}
	wg.Wait()

	n, _ := c.Count("chewy-funfetti-blondies")
	assert.Equal(t, 68, n)
}
