package services

import (
	"sync"
)

// Gate serializes public registry operations. The storage contract only
// guarantees atomicity per individual read/write, so every operation that
// performs a check-then-write sequence holds the gate for its full duration.
// One gate is shared by all registry services over the same store.
type Gate struct {
	mu sync.Mutex
}

func NewGate() *Gate {
	return &Gate{}
}

func (g *Gate) Lock() {
	g.mu.Lock()
}

func (g *Gate) Unlock() {
	g.mu.Unlock()
}
