// Package topo models a network topology as a graph of IPv4 addresses.
//
// A [Node] couples an immutable address with scratch state for graph
// traversals (visited flag, depth and search-tree parent). The traversal
// itself is left to callers: they own the mutable state of every node for the
// duration of a run and must reset it before the next one. Nodes are not safe
// for concurrent use.
package topo

import (
	"errors"

	"github.com/cerfical/iptopo/internal/addr"
)

// ErrNilNode is reported when a nil node is passed where a node is required.
var ErrNilNode = errors.New("nil node")

// ErrUnknownNode is reported when an address has no node in a [Network].
var ErrUnknownNode = errors.New("unknown node")

// ErrZeroAddr is reported when a node is created from an address that was never parsed.
var ErrZeroAddr = errors.New("zero address")

// NewNode creates a new unvisited node with no neighbors.
// It panics if ip is the zero address.
func NewNode(ip addr.IPv4) *Node {
	if ip.IsZero() {
		panic(ErrZeroAddr)
	}
	return &Node{
		ip:        ip,
		neighbors: make(NodeSet),
	}
}

// ParseNode creates a new node from an address in dotted-decimal notation.
func ParseNode(text string) (*Node, error) {
	ip, err := addr.ParseIPv4(text)
	if err != nil {
		return nil, err
	}
	return NewNode(ip), nil
}

// Compare orders nodes by their addresses.
func Compare(a, b *Node) int {
	return a.ip.Compare(b.ip)
}

// Node is a network address acting as a vertex of a topology graph.
type Node struct {
	ip addr.IPv4

	// Traversal state, never consulted for identity
	parent  *Node
	visited bool
	depth   int

	neighbors NodeSet
}

// Addr returns the address identifying the node.
func (n *Node) Addr() addr.IPv4 {
	return n.ip
}

// Value returns the numeric value of the node's address.
func (n *Node) Value() uint32 {
	return n.ip.Value()
}

// String returns the address text the node was created from.
func (n *Node) String() string {
	return n.ip.String()
}

// Parent returns the node from which this node was reached in the last traversal.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetParent records the node from which this node was reached.
// The node is not checked to be adjacent.
func (n *Node) SetParent(p *Node) {
	n.parent = p
}

func (n *Node) Visited() bool {
	return n.visited
}

func (n *Node) SetVisited(v bool) {
	n.visited = v
}

// Depth returns the level of the node in the last traversal's search tree, 0 for roots.
func (n *Node) Depth() int {
	return n.depth
}

func (n *Node) SetDepth(d int) {
	n.depth = d
}

// ResetTraversal clears the visited flag, depth and parent of the node.
func (n *Node) ResetTraversal() {
	n.parent = nil
	n.visited = false
	n.depth = 0
}

// AddNeighbor makes m adjacent to n. Adjacency is directed.
// Adding the same neighbor twice has no effect.
func (n *Node) AddNeighbor(m *Node) {
	if m == nil {
		panic(ErrNilNode)
	}
	n.neighbors.Add(m)
}

// AddNeighbors makes every node in nodes adjacent to n.
// If any of the nodes is nil, no neighbors are added and an error is returned.
func (n *Node) AddNeighbors(nodes ...*Node) error {
	for _, m := range nodes {
		if m == nil {
			return ErrNilNode
		}
	}

	for _, m := range nodes {
		n.neighbors.Add(m)
	}
	return nil
}

// Neighbors returns the set of nodes adjacent to n.
//
// The set is not copied: changes made to it are visible to n, and later
// changes to n's neighbors are visible through it.
func (n *Node) Neighbors() NodeSet {
	return n.neighbors
}

func (n *Node) Compare(other *Node) int {
	return Compare(n, other)
}

// Equal reports whether both nodes have the same address.
// A nil node is never equal to anything.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return false
	}
	return n.ip.Equal(other.ip)
}

// Hash returns a hash code consistent with [Node.Equal].
func (n *Node) Hash() uint64 {
	return n.ip.Hash()
}
