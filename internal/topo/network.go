package topo

import (
	"fmt"

	"github.com/cerfical/iptopo/internal/addr"
)

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		nodes: make(NodeSet),
	}
}

// Network owns all nodes of a topology, each address being represented by exactly one node.
type Network struct {
	nodes NodeSet
}

// Add returns the node for ip, creating it if the network does not have one yet.
// Like [NewNode], it panics if ip is the zero address.
func (n *Network) Add(ip addr.IPv4) *Node {
	if ip.IsZero() {
		panic(ErrZeroAddr)
	}
	if node, ok := n.nodes[ip.Value()]; ok {
		return node
	}

	node := NewNode(ip)
	n.nodes.Add(node)
	return node
}

// AddText is like [Network.Add], but parses the address from text first.
func (n *Network) AddText(text string) (*Node, error) {
	ip, err := addr.ParseIPv4(text)
	if err != nil {
		return nil, err
	}
	return n.Add(ip), nil
}

// Get returns the node for ip, or nil if the network has no such node.
func (n *Network) Get(ip addr.IPv4) *Node {
	if ip.IsZero() {
		return nil
	}
	return n.nodes[ip.Value()]
}

// Lookup finds a node by its address in dotted-decimal notation.
func (n *Network) Lookup(text string) (*Node, error) {
	ip, err := addr.ParseIPv4(text)
	if err != nil {
		return nil, err
	}

	node := n.Get(ip)
	if node == nil {
		return nil, fmt.Errorf("lookup %v: %w", ip, ErrUnknownNode)
	}
	return node, nil
}

// Link makes the node for to adjacent to the node for from, adding either one if needed.
func (n *Network) Link(from, to addr.IPv4) {
	n.Add(from).AddNeighbor(n.Add(to))
}

// Connect links two addresses in both directions.
func (n *Network) Connect(a, b addr.IPv4) {
	n.Link(a, b)
	n.Link(b, a)
}

// Nodes returns all nodes of the network ordered by address.
func (n *Network) Nodes() []*Node {
	return n.nodes.Sorted()
}

func (n *Network) Len() int {
	return n.nodes.Len()
}

// Reset clears the traversal state of every node, preparing the network for a new traversal.
func (n *Network) Reset() {
	for node := range n.nodes.All() {
		node.ResetTraversal()
	}
}
