// Package lint validates many mesh documents in parallel.
package lint

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meshlint/pkg/mesh"
	"github.com/Faultbox/meshlint/pkg/validate"
)

// Report is the outcome of checking one file.
type Report struct {
	Path     string
	Messages []string
	// Err is set when the file could not be loaded. Messages is empty then.
	Err error
}

// Clean reports whether the file loaded and has no problems.
func (r Report) Clean() bool {
	return r.Err == nil && len(r.Messages) == 0
}

type reportDoc struct {
	Path     string   `yaml:"path"`
	Error    string   `yaml:"error,omitempty"`
	Problems []string `yaml:"problems,omitempty"`
}

// MarshalYAML renders the load error as its message.
func (r Report) MarshalYAML() (interface{}, error) {
	doc := reportDoc{Path: r.Path, Problems: r.Messages}
	if r.Err != nil {
		doc.Error = r.Err.Error()
	}
	return doc, nil
}

// Runner checks files with a bounded number of goroutines.
type Runner struct {
	// Workers caps concurrent files. Zero or less means runtime.NumCPU().
	Workers int
	Logger  *zap.Logger
}

// Run loads and validates every path. Load failures are recorded in the
// matching Report and never stop the run. The returned slice is in the same
// order as paths. The only error returned is the context's.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Report, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	reports := make([]Report, len(paths))
	// Wait cancels gctx when it returns, so only the caller's ctx is
	// reported afterwards.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	log.Debug("starting run", zap.Int("files", len(paths)), zap.Int("workers", workers))

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = checkFile(path, log)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, ctx.Err()
}

// checkFile keeps one mesh and one sink per goroutine.
func checkFile(path string, log *zap.Logger) Report {
	m, err := mesh.Load(path)
	if err != nil {
		log.Warn("failed to load mesh", zap.String("path", path), zap.Error(err))
		return Report{Path: path, Err: err}
	}

	var sink validate.Log
	n := validate.CheckFaces(m, &sink)
	log.Debug("checked file",
		zap.String("path", path),
		zap.Int("faces", len(m.Faces)),
		zap.Int("problems", n),
	)
	return Report{Path: path, Messages: sink.Entries()}
}
