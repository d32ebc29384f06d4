package bipartite

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and checks.
var (
	// ErrEdgeOutOfRange indicates an endpoint outside [0,m)×[0,n).
	ErrEdgeOutOfRange = errors.New("bipartite: edge out of range")

	// ErrDuplicateEdge indicates the same pair was supplied twice.
	ErrDuplicateEdge = errors.New("bipartite: duplicate edge")

	// ErrNodeNotFound indicates a removed or unknown node.
	ErrNodeNotFound = errors.New("bipartite: node not found")

	// ErrNotPseudoforest indicates a component with more edges than nodes.
	ErrNotPseudoforest = errors.New("bipartite: not a pseudoforest")
)

// Kind tags a Node as machine or job.
type Kind uint8

const (
	// MachineNode marks the machine side.
	MachineNode Kind = iota
	// JobNode marks the job side.
	JobNode
)

func (k Kind) String() string {
	if k == MachineNode {
		return "machine"
	}
	return "job"
}

// Node is one vertex of the bipartite graph.
type Node struct {
	Kind  Kind
	Index int
}

// Machine returns the node of machine i.
func Machine(i int) Node { return Node{Kind: MachineNode, Index: i} }

// Job returns the node of job j.
func Job(j int) Node { return Node{Kind: JobNode, Index: j} }

// IsMachine reports whether v is on the machine side.
func (v Node) IsMachine() bool { return v.Kind == MachineNode }

// IsJob reports whether v is on the job side.
func (v Node) IsJob() bool { return v.Kind == JobNode }

// String renders v as "m<i>" or "j<j>".
func (v Node) String() string {
	if v.Kind == MachineNode {
		return fmt.Sprintf("m%d", v.Index)
	}
	return fmt.Sprintf("j%d", v.Index)
}

// Edge is an undirected machine–job edge.
type Edge struct {
	Machine, Job int
}

// Component is one connected component of the live graph.
type Component struct {
	// Nodes lists the component's nodes, machines first, each side by index.
	Nodes []Node
	// Edges is the number of edges inside the component.
	Edges int
}

// Size is the number of nodes in c.
func (c Component) Size() int { return len(c.Nodes) }

// IsTree reports edges == nodes − 1.
func (c Component) IsTree() bool { return c.Edges == len(c.Nodes)-1 }

// IsUnicyclic reports edges == nodes, i.e. exactly one cycle.
func (c Component) IsUnicyclic() bool { return c.Edges == len(c.Nodes) }

// IsPseudotree reports edges ≤ nodes.
func (c Component) IsPseudotree() bool { return c.Edges <= len(c.Nodes) }

// Jobs returns the job indices of c in ascending order.
func (c Component) Jobs() []int {
	var out []int
	for _, v := range c.Nodes {
		if v.IsJob() {
			out = append(out, v.Index)
		}
	}
	return out
}

// Machines returns the machine indices of c in ascending order.
func (c Component) Machines() []int {
	var out []int
	for _, v := range c.Nodes {
		if v.IsMachine() {
			out = append(out, v.Index)
		}
	}
	return out
}

// PseudoforestError reports the first component violating edges ≤ nodes.
type PseudoforestError struct {
	Component Component
}

func (e *PseudoforestError) Error() string {
	return fmt.Sprintf("bipartite: component of %d nodes has %d edges", len(e.Component.Nodes), e.Component.Edges)
}

func (e *PseudoforestError) Unwrap() error { return ErrNotPseudoforest }
