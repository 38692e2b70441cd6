package ports

// GraphStatsPort computes the structural statistics the populator reads when
// building a card's default fields. Implementations delegate to an external
// graph-analysis library; the card system never walks a graph itself.
//
// Degenerate inputs (empty graphs, disconnected graphs) surface as sentinel
// errors from domain/core, never as nonsensical numbers.
type GraphStatsPort interface {
	Name() string
	IsDirected() bool
	IsWeighted() bool
	IsNegativelyWeighted() bool

	NumNodes() int
	NumEdges() int
	NumSelfLoops() int

	// Degrees returns every node's degree (in-degree plus out-degree for
	// directed graphs, with self-loops counted twice).
	Degrees() []int
	// InDegrees and OutDegrees are only meaningful for directed graphs.
	InDegrees() []int
	OutDegrees() []int

	// BidirectionalShare returns the percentage of directed links whose
	// reverse link also exists. ErrNoLinks if the graph has no links.
	BidirectionalShare() (float64, error)

	// AverageClustering returns the mean local clustering coefficient,
	// taken over the undirected view of the graph. Zero for an empty graph.
	AverageClustering() float64

	// DegreeAssortativity returns the degree correlation across links
	// (out-degree vs in-degree for directed graphs). ErrNoLinks if the
	// graph has no links; NaN when degrees are constant.
	DegreeAssortativity() (float64, error)

	// ComponentSizes returns connected-component sizes, largest first,
	// using weak connectivity for directed graphs.
	ComponentSizes() []int

	// Diameter returns the longest shortest path, in hops. ErrEmptyGraph
	// on an empty graph, ErrDisconnected when no single component spans
	// the graph (strong connectivity for directed graphs).
	Diameter() (int, error)

	// LargestComponentDiameter returns the diameter of the largest
	// (weakly) connected component. ErrEmptyGraph on an empty graph.
	LargestComponentDiameter() (int, error)

	IsStronglyConnected() bool
	IsWeaklyConnected() bool
}
