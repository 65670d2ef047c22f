// Command postprocess cleans up imported project files in place:
// per-project structural fixes first, then the standard text cleanup
// over every card.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/eldritchfan/fancontent/internal/process"
)

func main() {
	var (
		projectsFlag = flag.String("projects", "projects", "directory containing project JSON files")
		nameFlag     = flag.String("name", "", "process a single project instead of the whole directory")
	)
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	p := &process.Processor{Dir: *projectsFlag}

	if *nameFlag != "" {
		if err := p.Run(*nameFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", *nameFlag, err)
			os.Exit(1)
		}
		slog.Info("processed", "project", *nameFlag)
		return
	}

	processed, err := p.RunAll()
	for _, name := range processed {
		slog.Info("processed", "project", name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
