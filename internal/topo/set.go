package topo

import (
	"iter"
	"maps"
	"slices"
)

// NodeSet is a set of nodes keyed by address.
//
// Nodes with equal addresses are considered the same element.
type NodeSet map[uint32]*Node

// Add inserts m into the set, unless a node with the same address is already present.
func (s NodeSet) Add(m *Node) {
	if _, ok := s[m.Value()]; !ok {
		s[m.Value()] = m
	}
}

func (s NodeSet) Remove(m *Node) {
	delete(s, m.Value())
}

func (s NodeSet) Contains(m *Node) bool {
	_, ok := s[m.Value()]
	return ok
}

func (s NodeSet) Len() int {
	return len(s)
}

// All iterates over the nodes of the set in no particular order.
func (s NodeSet) All() iter.Seq[*Node] {
	return maps.Values(s)
}

// Sorted returns the nodes of the set ordered by address.
func (s NodeSet) Sorted() []*Node {
	return slices.SortedFunc(s.All(), Compare)
}
