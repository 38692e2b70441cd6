package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/network-cards/network-cards/adapters/gonumstat"
	"github.com/network-cards/network-cards/adapters/render"
	"github.com/network-cards/network-cards/app"
	"github.com/network-cards/network-cards/domain/card"
	"github.com/network-cards/network-cards/domain/core"
	"github.com/network-cards/network-cards/internal/testkit"
	"github.com/network-cards/network-cards/ports"
)

// maxSnapshotBytes bounds uploaded snapshot documents.
const maxSnapshotBytes = 1 << 20

// handleRender renders an uploaded snapshot in the requested format.
func (a *App) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	renderID := core.NewID()

	c, err := card.ReadSnapshot(http.MaxBytesReader(w, r.Body, maxSnapshotBytes))
	if err != nil {
		log.Printf("[Render] id=%s rejected snapshot: %v", renderID.Short(), err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("X-Render-ID", renderID.String())
	table := c.Table()
	log.Printf("[Render] id=%s format=%s rows=%d", renderID.Short(), format, len(table.Rows))

	switch format {
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(render.Text(table)))

	case "json":
		snap, err := c.Snapshot()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, snap, "", "  "); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(pretty.Bytes())

	case "latex":
		w.Header().Set("Content-Type", "application/x-tex")
		w.Write([]byte(render.Latex(table, nil)))

	case "xlsx":
		f, err := render.Excel(table, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(w); err != nil {
			log.Printf("[Render] id=%s xlsx write failed: %v", renderID.Short(), err)
		}

	default:
		http.Error(w, "unknown format: "+format, http.StatusNotFound)
	}
}

// handleTemplate serves a blank card template snapshot for a graph kind,
// keeping the computed field set but clearing all values.
func (a *App) handleTemplate(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	g, err := templateGraph(kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	c := app.NewPopulator(gonumstat.New(g)).BuildCard()
	c.Clear(card.NullValue, true)

	snap, err := c.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, snap, "", "  "); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(pretty.Bytes())
}

// templateGraph builds the sample graph backing each template kind.
func templateGraph(kind string) (ports.Graph, error) {
	switch kind {
	case "undirected_unweighted":
		return testkit.Gnp(100, 0.24)
	case "undirected_weighted":
		return testkit.GnpWeighted(100, 0.24, 42)
	case "directed_unweighted":
		return testkit.DirectedDiamond(), nil
	case "directed_weighted":
		return testkit.DirectedDiamondWeighted(42), nil
	default:
		return nil, fmt.Errorf("unknown template kind %q", kind)
	}
}
