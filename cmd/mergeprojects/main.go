// Command mergeprojects combines all project files in a directory into
// one existing release document: cards, packs and encounter sets are
// concatenated and the declared types unioned.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"

	"github.com/eldritchfan/fancontent/internal/merge"
	"github.com/eldritchfan/fancontent/internal/model"
)

func main() {
	var (
		dirFlag      = flag.String("dir", "", "subdirectory of the projects directory to merge (required)")
		outFlag      = flag.String("out", "", "name of the existing output project (required)")
		projectsFlag = flag.String("projects", "projects", "projects root directory")
	)
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	if *dirFlag == "" || *outFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  mergeprojects -dir <subdir> -out <name> [-projects <root>]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	dir := filepath.Join(*projectsFlag, *dirFlag)
	outPath := model.ProjectPath(*projectsFlag, *outFlag)

	if err := merge.Run(dir, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	slog.Info("merged project written", "path", outPath)
}
