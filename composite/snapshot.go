package composite

import (
	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
)

// Node kinds reported by Snapshot.
const (
	KindLeaf      = "leaf"
	KindLeaf2     = "leaf2"
	KindComposite = "composite"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Node is a detached, serialisable description of a tree node.
type Node struct {
	Kind     string  `json:"kind"`
	Name     string  `json:"name,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Snapshot describes the tree rooted at root. The result shares nothing with the tree.
func Snapshot(root Component) (*Node, error) {
	if isNil(root) {
		return nil, ErrNilComponent
	}
	s := &snapshotter{}
	if err := root.Accept(s); err != nil {
		return nil, err
	}
	return s.root, nil
}

// Marshal encodes the Snapshot of root as JSON.
func Marshal(root Component) ([]byte, error) {
	node, err := Snapshot(root)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(node)
	if err != nil {
		return nil, errors.Wrap(err, "composite: marshal snapshot")
	}
	return data, nil
}

type snapshotter struct {
	root   *Node
	parent *Node
}

func (s *snapshotter) attach(n *Node) {
	if s.parent == nil {
		s.root = n
		return
	}
	s.parent.Children = append(s.parent.Children, n)
}

func (s *snapshotter) VisitLeaf(l *Leaf) error {
	s.attach(&Node{Kind: KindLeaf, Name: l.name})
	return nil
}

func (s *snapshotter) VisitLeaf2(l *Leaf2) error {
	s.attach(&Node{Kind: KindLeaf2, Name: l.name})
	return nil
}

func (s *snapshotter) VisitComposite(c *Composite) error {
	n := &Node{Kind: KindComposite}
	s.attach(n)
	parent := s.parent
	s.parent = n
	defer func() { s.parent = parent }()
	return c.AcceptChildren(s)
}
