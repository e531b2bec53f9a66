package domain

import (
	"sort"
	"sync"
)

// Assignment: набор (topic, partition), выданный брокером текущему участнику группы.
// Меняется только из колбэков ребаланса, остальной код лишь читает.
type Assignment struct {
	mu    sync.RWMutex
	parts map[string]map[int32]struct{}
}

// NewAssignment: пустое назначение.
func NewAssignment() *Assignment {
	return &Assignment{parts: make(map[string]map[int32]struct{})}
}

// Assign добавляет выданные партиции.
func (a *Assignment) Assign(granted map[string][]int32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for topic, partitions := range granted {
		set, ok := a.parts[topic]
		if !ok {
			set = make(map[int32]struct{}, len(partitions))
			a.parts[topic] = set
		}
		for _, p := range partitions {
			set[p] = struct{}{}
		}
	}
}

// Revoke убирает отозванные (или потерянные) партиции.
func (a *Assignment) Revoke(revoked map[string][]int32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for topic, partitions := range revoked {
		set, ok := a.parts[topic]
		if !ok {
			continue
		}
		for _, p := range partitions {
			delete(set, p)
		}
		if len(set) == 0 {
			delete(a.parts, topic)
		}
	}
}

// Clear сбрасывает назначение целиком (при отключении).
func (a *Assignment) Clear() {
	a.mu.Lock()
	a.parts = make(map[string]map[int32]struct{})
	a.mu.Unlock()
}

// Owns сообщает, принадлежит ли партиция текущему участнику.
func (a *Assignment) Owns(topic string, partition int32) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.parts[topic][partition]
	return ok
}

// Snapshot: копия назначения с отсортированными партициями.
func (a *Assignment) Snapshot() map[string][]int32 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[string][]int32, len(a.parts))
	for topic, set := range a.parts {
		ps := make([]int32, 0, len(set))
		for p := range set {
			ps = append(ps, p)
		}
		sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
		out[topic] = ps
	}
	return out
}

// Len: общее число партиций.
func (a *Assignment) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	n := 0
	for _, set := range a.parts {
		n += len(set)
	}
	return n
}
