package main

import (
	"flag"
	"fmt"
	"os"

	"drafter/diagram"
	"drafter/export"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Edit the diagram in the terminal UI")
		format      = flag.String("format", "json", "Export format: json, mermaid")
		outputFile  = flag.String("o", "", "Output file (default: stdout)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [diagram.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A UML state diagram editor with automatic connection routing.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                        # Start an empty editor\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i machine.json        # Edit a diagram\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s machine.json           # Print it back as JSON\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format mermaid -o out.mmd machine.json\n", os.Args[0])
	}
	flag.Parse()

	filename := flag.Arg(0)

	if *interactive || filename == "" {
		if err := runEditor(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g, err := loadGraph(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	exporter, err := exporterFor(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := exporter.Export(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: export failed: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(out), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(out)
}

func exporterFor(name string) (export.Exporter, error) {
	switch name {
	case "json":
		return export.NewJSON(), nil
	case "mermaid":
		return export.NewMermaid(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", name)
	}
}

func loadGraph(filename string) (*diagram.Graph, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load diagram: %w", err)
	}
	return export.NewJSON().Load(data)
}

func saveGraph(filename string, g *diagram.Graph) error {
	out, err := export.NewJSON().Export(g)
	if err != nil {
		return fmt.Errorf("save diagram: %w", err)
	}
	return os.WriteFile(filename, []byte(out), 0644)
}
