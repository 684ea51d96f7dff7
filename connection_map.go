package main

import "sync"

// connectionMap counts the phrases served to each open WebSocket connection,
// keyed by connection ID.
type connectionMap struct {
	mu     sync.Mutex
	served map[uint64]int
}

func newConnectionMap() *connectionMap {
	return &connectionMap{served: make(map[uint64]int)}
}

// register starts tracking a connection. Registering twice is a no-op.
func (m *connectionMap) register(id uint64) {
	m.mu.Lock()
	if _, ok := m.served[id]; !ok {
		m.served[id] = 0
	}
	m.mu.Unlock()
}

// recordServed bumps the count for id and returns the new total.
func (m *connectionMap) recordServed(id uint64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.served[id]++
	return m.served[id]
}

// unregister stops tracking id and returns how many phrases it received.
func (m *connectionMap) unregister(id uint64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, found := m.served[id]
	delete(m.served, id)
	return n, found
}

func (m *connectionMap) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.served)
}
