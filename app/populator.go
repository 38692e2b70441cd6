// Package app wires the statistics provider to the card data model: the
// populator derives a card's default field set from one graph.
package app

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/network-cards/network-cards/domain/card"
	"github.com/network-cards/network-cards/ports"
)

// distributionNote explains the summarization convention attached to every
// summarized distribution field.
const distributionNote = "Distributions summarized with average [min, max]."

// notApplicable is the sentinel for statistics undefined on the given graph.
const notApplicable = "n/a"

// metainfoFields is the default metainformation panel, in order. All start
// blank; they describe the data, not the structure, and are hand-filled.
var metainfoFields = []string{
	"Node metadata",
	"Link metadata",
	"Date of creation",
	"Data generating process",
	"Ethics",
	"Funding",
	"Citation",
	"Access",
}

// Populator derives the default card for one graph from its statistics
// provider.
type Populator struct {
	stats ports.GraphStatsPort
}

// NewPopulator creates a populator reading from the given provider.
func NewPopulator(stats ports.GraphStatsPort) *Populator {
	return &Populator{stats: stats}
}

// BuildCard computes the default three-panel card. Statistics undefined on
// the graph (diameter of a disconnected graph, assortativity without links)
// surface as explicit "n/a" values, never as errors: the card is a readable
// report, not a computation log.
func (p *Populator) BuildCard() *card.Card {
	c := card.New()

	c.Update(card.Overall, "Name", p.stats.Name())
	c.Update(card.Overall, "Kind", p.kind())
	c.Update(card.Overall, "Nodes are", card.NullValue)
	c.Update(card.Overall, "Links are", card.NullValue)
	if p.stats.IsWeighted() {
		c.Update(card.Overall, "Link weights are", card.NullValue)
	}
	c.Update(card.Overall, "Considerations", card.NullValue)

	c.Update(card.Structure, "Number of nodes", strconv.Itoa(p.stats.NumNodes()))
	c.Update(card.Structure, "Number of links", p.links())
	if p.stats.IsDirected() {
		c.Update(card.Structure, "--- Bidirectional links", p.bidirectional())
	}
	for _, l := range p.degreeFields() {
		c.SetEntry(card.Structure, l.field, l.entry)
	}
	c.Update(card.Structure, "Clustering", p.clustering())
	for _, l := range p.connectedFields() {
		c.SetEntry(card.Structure, l.field, l.entry)
	}
	c.Update(card.Structure, "Assortativity (degree)", p.assortativity())

	for _, field := range metainfoFields {
		c.Update(card.Metainfo, field, card.NullValue)
	}
	return c
}

// labeled pairs a field name with its computed entry, preserving order in
// the multi-field statistics below.
type labeled struct {
	field string
	entry card.Entry
}

// kind builds the alphabetically-sorted, capitalized tag list, e.g.
// "Directed, weighted (negatively)". Weightedness is an attribute of the
// graph, not of the weight values; negativity is.
func (p *Populator) kind() string {
	var tags []string
	if p.stats.IsDirected() {
		tags = append(tags, "directed")
	} else {
		tags = append(tags, "undirected")
	}
	switch {
	case p.stats.IsWeighted() && p.stats.IsNegativelyWeighted():
		tags = append(tags, "weighted (negatively)")
	case p.stats.IsWeighted():
		tags = append(tags, "weighted")
	default:
		tags = append(tags, "unweighted")
	}
	sort.Strings(tags)
	return capitalize(strings.Join(tags, ", "))
}

// links reports the link count, with the self-loop count in parentheses when
// self-loops are present.
func (p *Populator) links() string {
	m := p.stats.NumEdges()
	nsl := p.stats.NumSelfLoops()
	if nsl == 0 {
		return strconv.Itoa(m)
	}
	lbl := "self-loops"
	if nsl == 1 {
		lbl = "self-loop"
	}
	return fmt.Sprintf("%d (%d %s)", m, nsl, lbl)
}

func (p *Populator) bidirectional() string {
	share, err := p.stats.BidirectionalShare()
	if err != nil {
		return notApplicable
	}
	return formatFloat(share, 3) + "%"
}

// degreeFields summarizes the degree distribution: one field for undirected
// graphs, three for directed graphs (in, out, and undirected-equivalent with
// an explanatory footnote).
func (p *Populator) degreeFields() []labeled {
	if !p.stats.IsDirected() {
		return []labeled{{"Degree", p.summarize(p.stats.Degrees())}}
	}
	undirected := p.summarize(p.stats.Degrees())
	undirected.Notes = append([]string{"Undirected."}, undirected.Notes...)
	return []labeled{
		{"Degree (in)", p.summarize(p.stats.InDegrees())},
		{"Degree (out)", p.summarize(p.stats.OutDegrees())},
		{"Degree", undirected},
	}
}

func (p *Populator) clustering() string {
	if p.stats.NumNodes() == 0 {
		return "0"
	}
	return formatFloat(p.stats.AverageClustering(), 6)
}

// connectedFields describes connectivity. Undirected: either "Yes" plus the
// diameter, or the component count with the share of nodes in the largest
// component, the component-size distribution, an explicit "n/a" diameter,
// and the largest component's diameter. Directed: strongly connected graphs
// get a diameter, weakly connected and disconnected graphs a label only.
func (p *Populator) connectedFields() []labeled {
	if p.stats.IsDirected() {
		return p.connectedDirected()
	}
	return p.connectedUndirected()
}

func (p *Populator) connectedDirected() []labeled {
	if p.stats.IsStronglyConnected() {
		return []labeled{
			{"Connected", card.NewEntry("Strongly connected")},
			{"Diameter", p.diameter()},
		}
	}
	if p.stats.IsWeaklyConnected() {
		return []labeled{{"Connected", card.NewEntry("Weakly connected")}}
	}
	return []labeled{{"Connected", card.NewEntry("Disconnected")}}
}

func (p *Populator) connectedUndirected() []labeled {
	n := p.stats.NumNodes()
	if n == 0 {
		return []labeled{
			{"Connected", card.NewEntry(notApplicable)},
			{"Diameter", card.NewEntry(notApplicable)},
		}
	}
	sizes := p.stats.ComponentSizes()
	if len(sizes) == 1 {
		return []labeled{
			{"Connected", card.NewEntry("Yes")},
			{"Diameter", p.diameter()},
		}
	}
	connected := fmt.Sprintf("%d components [%.2f%% in largest]",
		len(sizes), 100*float64(sizes[0])/float64(n))

	fields := []labeled{
		{"Connected", card.NewEntry(connected)},
		{"Component size", p.summarize(sizes)},
		{"Diameter", card.NewEntry(notApplicable)},
	}
	if d, err := p.stats.LargestComponentDiameter(); err == nil {
		fields = append(fields, labeled{"Largest component's diameter", card.NewEntry(strconv.Itoa(d))})
	} else {
		fields = append(fields, labeled{"Largest component's diameter", card.NewEntry(notApplicable)})
	}
	return fields
}

func (p *Populator) diameter() card.Entry {
	d, err := p.stats.Diameter()
	if err != nil {
		return card.NewEntry(notApplicable)
	}
	return card.NewEntry(strconv.Itoa(d))
}

func (p *Populator) assortativity() string {
	r, err := p.stats.DegreeAssortativity()
	if err != nil || math.IsNaN(r) {
		return notApplicable
	}
	return formatFloat(r, 6)
}

// summarize reduces a distribution to a card entry. Five or fewer values are
// reported literally, sorted descending; larger distributions collapse to
// "mean [min, max]" with a footnote naming the convention; an empty
// distribution is not applicable.
func (p *Populator) summarize(values []int) card.Entry {
	if len(values) == 0 {
		return card.NewEntry(notApplicable)
	}
	sorted := append([]int(nil), values...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	if len(sorted) <= 5 {
		strs := make([]string, len(sorted))
		for i, v := range sorted {
			strs[i] = strconv.Itoa(v)
		}
		return card.NewEntry("[" + strings.Join(strs, ", ") + "]")
	}

	floats := make([]float64, len(sorted))
	for i, v := range sorted {
		floats[i] = float64(v)
	}
	mean, err := stats.Mean(floats)
	if err != nil {
		return card.NewEntry(notApplicable)
	}
	min, max := sorted[len(sorted)-1], sorted[0]
	value := fmt.Sprintf("%s [%d, %d]", formatFloat(mean, 6), min, max)
	return card.NewEntry(value, distributionNote)
}

// formatFloat renders v with the given number of significant digits,
// trailing zeros stripped.
func formatFloat(v float64, digits int) string {
	return strconv.FormatFloat(v, 'g', digits, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
