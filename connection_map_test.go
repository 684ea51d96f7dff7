package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionMap(t *testing.T) {
	t.Parallel()

	m := newConnectionMap()
	m.register(1)
	m.register(1)
	m.register(2)
	assert.Equal(t, 2, m.len())

	assert.Equal(t, 1, m.recordServed(1))
	assert.Equal(t, 2, m.recordServed(1))

	served, found := m.unregister(1)
	assert.True(t, found)
	assert.Equal(t, 2, served)

	_, found = m.unregister(1)
	assert.False(t, found)
	assert.Equal(t, 1, m.len())
}

func TestConnectionMap_Concurrent(t *testing.T) {
	t.Parallel()

	m := newConnectionMap()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m.recordServed(7)
			}
		}()
	}
	wg.Wait()

	served, _ := m.unregister(7)
	assert.Equal(t, 800, served)
}
