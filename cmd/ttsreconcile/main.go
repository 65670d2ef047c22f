// Command ttsreconcile rewrites legacy card identifiers in a Tabletop
// Simulator scene export to the canonical codes of a project document,
// writing the result to <name>-tts-updated.json and reporting every
// card it could not match conclusively.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/lmittmann/tint"

	"github.com/eldritchfan/fancontent/internal/model"
	"github.com/eldritchfan/fancontent/internal/reconcile"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
)

func main() {
	var (
		ttsFlag      = flag.String("tts", "", "path to the TTS scene export (required)")
		nameFlag     = flag.String("name", "", "project name (required)")
		projectsFlag = flag.String("projects", "projects", "projects root directory")
	)
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	if *ttsFlag == "" || *nameFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  ttsreconcile -tts <path> -name <project-name> [-projects <root>]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	project, err := model.LoadProject(model.ProjectPath(*projectsFlag, *nameFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
		os.Exit(1)
	}

	root, err := model.LoadBag(*ttsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading TTS export: %v\n", err)
		os.Exit(1)
	}

	report := reconcile.Run(project, root)

	outPath := *nameFlag + "-tts-updated.json"
	if err := root.Save(outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	printReport(report)
	fmt.Println(okStyle.Render(fmt.Sprintf("Wrote %s", outPath)))
}

func printReport(report *reconcile.Report) {
	fmt.Println(okStyle.Render(fmt.Sprintf("Resolved %d card id(s)", report.Resolved())))

	unresolved := report.Unresolved()
	if len(unresolved) == 0 {
		return
	}

	fmt.Println(warnStyle.Render(fmt.Sprintf("%d card(s) not matched conclusively:", len(unresolved))))
	for _, res := range unresolved {
		line := fmt.Sprintf("  %s %s", res.LegacyID, res.Name)
		if res.Subname != "" {
			line += fmt.Sprintf(" (%s)", res.Subname)
		}
		line += " [" + res.Status.String() + "]"
		fmt.Println(line)
		if len(res.Candidates) > 0 {
			fmt.Println(detailStyle.Render(fmt.Sprintf("    candidates: %v", res.Candidates)))
		}
	}
}
