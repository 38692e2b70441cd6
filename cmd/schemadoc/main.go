// schemadoc prints the card field documentation extracted from the JSON
// schema, as LaTeX description items (default), a Markdown list, or HTML.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/network-cards/network-cards/internal/config"
	"github.com/network-cards/network-cards/internal/schemadoc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Startup] No .env file loaded: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Startup] Invalid configuration: %v", err)
	}

	schemaPath := flag.String("schema", cfg.Schema.Path, "card schema file")
	format := flag.String("format", "latex", "output format: latex, markdown, or html")
	flag.Parse()

	f, err := os.Open(*schemaPath)
	if err != nil {
		log.Fatalf("[Schema] Cannot open %s: %v", *schemaPath, err)
	}
	defer f.Close()

	docs, err := schemadoc.Parse(f)
	if err != nil {
		log.Fatalf("[Schema] %v", err)
	}

	switch *format {
	case "latex":
		fmt.Print(schemadoc.Latex(docs))
	case "markdown":
		fmt.Print(schemadoc.Markdown(docs))
	case "html":
		fmt.Print(schemadoc.HTML(docs))
	default:
		log.Fatalf("[Schema] Unknown format %q", *format)
	}
}
