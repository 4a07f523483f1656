// datacheck loads a dataset file and reports what a degraded render
// would hide: invalid item records, component references that resolve
// to nothing, and gods without a derivable role. The dataset is
// hand-maintained; this is the fast way to audit a new drop of it.
package main

import (
	"flag"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/catalog"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/dataset"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/lookup"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/recipe"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/roles"
)

func main() {
	dataPath := flag.String("data", "./data/dataset.json", "Dataset JSON path")
	verbose := flag.Bool("v", false, "List every unresolved component reference")
	flag.Parse()

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Prefix: "datacheck"})

	ds, err := dataset.Load(*dataPath)
	if err != nil {
		logger.Fatal("failed to load dataset", "err", err)
	}

	cat := catalog.New(ds.Gods, ds.Items)
	logger.Info("dataset loaded",
		"gods", len(cat.Gods()),
		"items_total", len(cat.Corpus()),
		"items_valid", len(cat.Items()),
		"pantheons", len(cat.Pantheons()),
		"stat_keys", len(cat.StatKeys()))

	invalid := len(cat.Corpus()) - len(cat.Items())
	if invalid > 0 {
		logger.Warn("invalid item records excluded from listings", "count", invalid)
	}

	resolver := lookup.New(cat.Corpus())
	builder := recipe.NewBuilder(resolver)

	var broken, missing int
	for _, it := range cat.Items() {
		tree := builder.Build(it)
		if d := tree.Discrepancy(); d > 0 {
			broken++
			missing += d
			if *verbose {
				logger.Warn("incomplete recipe", "item", it.DisplayName(), "unresolved", d)
			}
		}
	}
	if broken > 0 {
		logger.Warn("recipes with unresolved components", "items", broken, "references", missing)
	} else {
		logger.Info("all recipe references resolve")
	}

	var roleless int
	for _, g := range cat.Gods() {
		if len(roles.Derive(g)) == 0 {
			roleless++
			if *verbose {
				logger.Warn("no derivable role", "god", g.DisplayName())
			}
		}
	}
	if roleless > 0 {
		logger.Warn("gods without a derivable role", "count", roleless)
	}

	if broken > 0 || invalid > 0 || roleless > 0 {
		os.Exit(1)
	}
}
