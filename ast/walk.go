package ast

// Children returns the direct children of n in traversal order.
// Nil children are omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *Aggregate:
		for _, c := range n.Children {
			add(c)
		}
	case *Binary:
		add(n.Left)
		add(n.Right)
	case *Unary:
		add(n.Operand)
	case *Selection:
		add(n.Cond)
		add(n.True)
		add(n.False)
	case *Switch:
		add(n.Cond)
		add(n.Body)
	case *Loop:
		add(n.Cond)
		add(n.Body)
		add(n.Terminal)
	case *Branch:
		add(n.Expr)
	}
	return out
}

// Walk traverses the tree rooted at n depth-first, calling fn before the
// children of each node. If fn returns false the children are skipped.
//
// Recursion depth equals tree depth.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}
