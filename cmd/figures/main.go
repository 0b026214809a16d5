package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gfuzz-paper/diagram"
	"github.com/gfuzz-paper/diagram/scenes"
	"github.com/tdewolff/argp"
)

type Generate struct {
	Output  string  `short:"o" default:"." desc:"Output directory"`
	DPI     float64 `default:"300" desc:"Raster resolution in dots per inch"`
	Only    string  `desc:"Comma separated figure names, all figures if empty"`
	Formats string  `short:"f" default:"pdf,png" desc:"Comma separated output formats"`
	Page    bool    `desc:"Export the full page instead of cropping to the content"`
	Verbose bool    `short:"v" desc:"Log export details"`
}

type List struct{}

func main() {
	root := argp.NewCmd(&Generate{}, "Figure generator for the GFuzz paper")
	root.AddCmd(&List{}, "list", "List figure names")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Generate) Run() error {
	if cmd.Verbose {
		diagram.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	gens, err := selectGenerators(cmd.Only)
	if err != nil {
		return err
	}

	spec := diagram.DefaultExportSpec("")
	spec.Dir = cmd.Output
	spec.DPI = cmd.DPI
	if cmd.Page {
		spec.Bounding = diagram.Page
	}
	spec.Formats = nil
	for _, f := range strings.Split(cmd.Formats, ",") {
		if f = strings.TrimSpace(f); f != "" {
			spec.Formats = append(spec.Formats, diagram.Format(f))
		}
	}

	if err := os.MkdirAll(cmd.Output, 0o755); err != nil {
		return err
	}
	for _, g := range gens {
		paths, err := g.Run(spec)
		if err != nil {
			return err
		}
		fmt.Println(scenes.Confirmation(paths))
	}
	return nil
}

func (cmd *List) Run() error {
	for _, g := range scenes.All() {
		fmt.Printf("%-20s %s\n", g.Name, g.Stem)
	}
	return nil
}

func selectGenerators(only string) ([]scenes.Generator, error) {
	if only == "" {
		return scenes.All(), nil
	}
	var gens []scenes.Generator
	for _, name := range strings.Split(only, ",") {
		name = strings.TrimSpace(name)
		g, ok := scenes.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown figure %q", name)
		}
		gens = append(gens, g)
	}
	return gens, nil
}
