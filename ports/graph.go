package ports

// Edge is a single link in a graph supplied to the card system. Weight is
// meaningful only when the owning graph reports Weighted() == true.
type Edge struct {
	From   int64
	To     int64
	Weight float64
}

// Graph is the capability set the card system requires from a network. Any
// graph representation that can enumerate its nodes and links, and report
// directedness and the presence of a weight attribute, can be summarized.
//
// Weightedness is declared, not inferred: a graph whose links carry a weight
// attribute is weighted even if every weight happens to be zero or one.
type Graph interface {
	// Name returns the network's name, or "" if unnamed.
	Name() string

	// Directed reports whether links are ordered pairs.
	Directed() bool

	// Weighted reports whether links carry a weight attribute.
	Weighted() bool

	// Nodes enumerates all node identifiers, including isolated nodes.
	Nodes() []int64

	// Edges enumerates all links. Self-loops (From == To) are allowed.
	Edges() []Edge
}
