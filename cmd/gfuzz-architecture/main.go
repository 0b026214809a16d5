package main

import (
	"fmt"
	"os"

	"github.com/gfuzz-paper/diagram"
	"github.com/gfuzz-paper/diagram/scenes"
)

func main() {
	g, _ := scenes.Lookup("gfuzz-architecture")
	paths, err := g.Run(diagram.DefaultExportSpec(""))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
	fmt.Println(scenes.Confirmation(paths))
}
