package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pivolan/go_utils"
	uuid "github.com/satori/go.uuid"

	"github.com/pivolan/listing_analyzer/config"
)

func main() {
	runID := uuid.NewV4().String()
	cfg := config.GetConfig()

	for _, name := range cfg.Renderers {
		if !go_utils.InArray(name, config.AllRenderers) {
			log.Printf("run %s: unknown renderer %q ignored", runID, name)
		}
	}

	log.Printf("run %s: loading %s", runID, cfg.DataPath)
	listings, err := LoadListings(cfg.DataPath)
	if err != nil {
		log.Fatalf("run %s: %v", runID, err)
	}
	log.Printf("run %s: %d listings with reviews", runID, len(listings))

	reports := NewPipeline(cfg, runID).Run(listings)

	fmt.Println(GenerateSummaryTable(reports))
	failures := 0
	for _, r := range reports {
		if len(r.Words) > 0 {
			fmt.Println(GenerateWordsTable(r))
		}
		failures += r.RenderFailures
	}

	if failures > 0 {
		log.Printf("run %s: finished with %d failed renders", runID, failures)
		os.Exit(1)
	}
	log.Printf("run %s: finished", runID)
}
