// meshlint checks mesh documents for degenerate faces and bad winding.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshlint/internal/config"
	"github.com/Faultbox/meshlint/internal/lint"
	"github.com/Faultbox/meshlint/internal/logger"
	"github.com/Faultbox/meshlint/pkg/math"
	"github.com/Faultbox/meshlint/pkg/mesh"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	code := 0
	switch command {
	case "check":
		code = cmdCheck(cfg, args)
	case "info":
		code = cmdInfo(args)
	case "normals":
		code = cmdNormals(args)
	case "config":
		code = cmdConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		code = 1
	}

	logger.Sync()
	os.Exit(code)
}

func printUsage() {
	fmt.Println(`meshlint - mesh face validator

Usage:
  meshlint [flags] <command> [args]

Commands:
  check <path>...    Validate mesh documents (directories are walked)
  info <file>        Show vertex, face and bounds information
  normals <file>     Recompute vertex normals and print the document
  config [-save]     Print the effective configuration, optionally saving it
  help               Show this help

Flags:
  -config <file>     Config file (default ./meshlint.yaml)
  -workers <n>       Files to validate in parallel
  -format <fmt>      Output format: text, yaml
  -show-clean        List files without problems
  -log-file <file>   Write logs to a rotating file
  -debug             Enable debug logging

Examples:
  meshlint check models/
  meshlint -format yaml check a.yaml b.yaml
  meshlint info models/crate.yaml
  meshlint normals -smooth -o crate.yaml models/crate.yaml`)
}

func cmdCheck(cfg *config.Config, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshlint check <path>...")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runCheck(ctx, cfg, args, os.Stdout)
}

// runCheck validates the documents under args, writes reports to w and
// returns the exit status.
func runCheck(ctx context.Context, cfg *config.Config, args []string, w io.Writer) int {
	paths, err := lint.Collect(args, cfg.Check.Extensions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "No mesh documents found")
		return 1
	}

	runner := &lint.Runner{
		Workers: cfg.WorkerCount(),
		Logger:  logger.Named("lint"),
	}
	reports, err := runner.Run(ctx, paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Output.Format == config.FormatYAML {
		err = writeYAML(w, reports)
	} else {
		writeText(w, reports, cfg.Output.ShowClean)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	summary := lint.Summarize(reports)
	logger.Info("check finished",
		zap.Int("files", summary.Files),
		zap.Int("problems", summary.Problems),
		zap.Int("failed", summary.Failed),
	)
	fmt.Fprintf(os.Stderr, "\n(%s)\n", summary)
	if !summary.OK() {
		return 1
	}
	return 0
}

func writeText(w io.Writer, reports []lint.Report, showClean bool) {
	for _, r := range reports {
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "%s:\n  error: %v\n", r.Path, r.Err)
		case len(r.Messages) > 0:
			fmt.Fprintf(w, "%s:\n", r.Path)
			for _, msg := range r.Messages {
				fmt.Fprintf(w, "  %s\n", msg)
			}
		case showClean:
			fmt.Fprintf(w, "%s: ok\n", r.Path)
		}
	}
}

func writeYAML(w io.Writer, reports []lint.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}

func cmdInfo(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshlint info <file>")
		return 1
	}

	m, err := mesh.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	degenerate := 0
	materials := make(map[int]bool)
	for _, f := range m.Faces {
		if f.Degenerate() {
			degenerate++
		}
		materials[f.Material] = true
	}

	fmt.Printf("Mesh:      %s\n", args[0])
	fmt.Printf("Vertices:  %d\n", len(m.Vertices))
	fmt.Printf("Faces:     %d (%d degenerate)\n", len(m.Faces), degenerate)
	fmt.Printf("Materials: %d\n", len(materials))
	if b, ok := m.Bounds(); ok {
		fmt.Printf("Min:       %s\n", formatVector(b.Min))
		fmt.Printf("Max:       %s\n", formatVector(b.Max))
		fmt.Printf("Size:      %s\n", formatVector(b.Size()))
	}
	return 0
}

func formatVector(v math.Vector3f) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func cmdNormals(args []string) int {
	fs := flag.NewFlagSet("normals", flag.ExitOnError)
	output := fs.String("o", "", "Write to file instead of stdout")
	smooth := fs.Bool("smooth", false, "Average normals of vertices sharing a position")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshlint normals [-smooth] [-o output] <file>")
		return 1
	}

	m, err := mesh.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	m.ComputeNormals()
	if *smooth {
		m.SmoothNormals(0.001)
	}

	w := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
			return 1
		}
		defer f.Close()
		w = f
	}

	if err := mesh.Encode(w, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Debug("recomputed normals", zap.String("path", fs.Arg(0)), zap.Int("vertices", len(m.Vertices)))
	return 0
}

func cmdConfig(cfg *config.Config, args []string) int {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	save := fs.Bool("save", false, "Save to "+config.ConfigDir())
	fs.Parse(args)

	if *save {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "Saved to %s\n", config.ConfigDir())
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
