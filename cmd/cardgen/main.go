// cardgen writes blank card templates for the four graph kinds (undirected
// and directed, weighted and unweighted; the undirected ones in connected
// and unconnected variants) to both spreadsheet and LaTeX formats. The
// templates keep the computed field set and footnotes but blank every value,
// for hand-authoring cards without recomputation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/network-cards/network-cards/adapters/gonumstat"
	"github.com/network-cards/network-cards/adapters/render"
	"github.com/network-cards/network-cards/app"
	"github.com/network-cards/network-cards/domain/card"
	"github.com/network-cards/network-cards/internal/config"
	"github.com/network-cards/network-cards/internal/testkit"
	"github.com/network-cards/network-cards/ports"
)

// maxAttempts bounds the regeneration loop for random graphs that must come
// out connected (or not).
const maxAttempts = 50

type variant struct {
	name       string
	build      func() (ports.Graph, error)
	diameterNA bool
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Startup] No .env file loaded: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Startup] Invalid configuration: %v", err)
	}

	outDir := flag.String("out", cfg.Output.TemplateDir, "template output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("[Templates] Cannot create %s: %v", *outDir, err)
	}

	variants := []variant{
		{"undirected_unweighted_connected", func() (ports.Graph, error) {
			return gnpWithConnectivity(0.24, true, false)
		}, false},
		{"undirected_unweighted_unconnected", func() (ports.Graph, error) {
			return gnpWithConnectivity(0.01, false, false)
		}, true},
		{"undirected_weighted_connected", func() (ports.Graph, error) {
			return gnpWithConnectivity(0.24, true, true)
		}, false},
		{"undirected_weighted_unconnected", func() (ports.Graph, error) {
			return gnpWithConnectivity(0.01, false, true)
		}, true},
		{"directed_unweighted", func() (ports.Graph, error) {
			return testkit.DirectedDiamond(), nil
		}, false},
		{"directed_weighted", func() (ports.Graph, error) {
			return testkit.DirectedDiamondWeighted(42), nil
		}, false},
	}

	var group errgroup.Group
	for _, v := range variants {
		v := v
		group.Go(func() error {
			return writeTemplates(*outDir, v)
		})
	}
	if err := group.Wait(); err != nil {
		log.Fatalf("[Templates] Generation failed: %v", err)
	}
	log.Printf("[Templates] Wrote %d variants to %s", len(variants), *outDir)
}

// gnpWithConnectivity regenerates G(100, p) until the connectivity matches.
func gnpWithConnectivity(p float64, connected, weighted bool) (ports.Graph, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var g *testkit.Graph
		var err error
		if weighted {
			g, err = testkit.GnpWeighted(100, p, int64(attempt))
		} else {
			g, err = testkit.Gnp(100, p)
		}
		if err != nil {
			return nil, err
		}
		if gonumstat.New(g).IsWeaklyConnected() == connected {
			return g, nil
		}
	}
	return nil, fmt.Errorf("no G(100, %g) draw with connected=%v after %d attempts", p, connected, maxAttempts)
}

// writeTemplates builds the blank card for one variant and saves it as
// .xlsx and .tex.
func writeTemplates(outDir string, v variant) error {
	g, err := v.build()
	if err != nil {
		return fmt.Errorf("%s: %w", v.name, err)
	}

	c := app.NewPopulator(gonumstat.New(g)).BuildCard()
	c.Clear(card.NullValue, true)
	if v.diameterNA {
		c.Update(card.Structure, "Diameter", "n/a")
	}
	table := c.Table()

	xlsxPath := filepath.Join(outDir, v.name+".xlsx")
	if err := render.WriteExcel(table, xlsxPath, nil); err != nil {
		return fmt.Errorf("%s: %w", v.name, err)
	}

	texPath := filepath.Join(outDir, v.name+".tex")
	if err := os.WriteFile(texPath, []byte(render.Latex(table, nil)+"\n"), 0o644); err != nil {
		return fmt.Errorf("%s: %w", v.name, err)
	}

	log.Printf("[Templates] %s done", v.name)
	return nil
}
