// Package bench times the lane dot-product algorithms against each other.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-lanedot/hwy"
	"github.com/ajroetker/go-lanedot/hwy/contrib/dot"
)

// ErrInvalidOptions is returned by Run for unusable Options.
var ErrInvalidOptions = errors.New("bench: invalid options")

// ---------------------------------------------------------------------------
// Run result and stats
// ---------------------------------------------------------------------------

// RunResult holds the timing and value of a single algorithm invocation.
type RunResult struct {
	Algorithm string
	Index     int
	Cold      bool // true for the first run of each algorithm
	Duration  time.Duration
	Value     float32
}

// Stats holds aggregate timing statistics across all runs.
type Stats struct {
	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
}

// ComputeStats calculates min, max and mean over a slice of durations.
// An empty slice yields zero Stats.
func ComputeStats(durations []time.Duration) Stats {
	if len(durations) == 0 {
		return Stats{}
	}
	mn, mx := durations[0], durations[0]
	var sum time.Duration
	for _, d := range durations {
		if d < mn {
			mn = d
		}
		if d > mx {
			mx = d
		}
		sum += d
	}
	return Stats{
		Min:  mn,
		Max:  mx,
		Mean: sum / time.Duration(len(durations)),
	}
}

// AlgorithmReport summarizes all runs of one algorithm.
type AlgorithmReport struct {
	Name     string
	Value    float32
	RelError float64 // |Value - Reference| / |Reference|
	Stats    Stats
	Runs     []RunResult
}

// Report is the outcome of a benchmark session.
type Report struct {
	RunID      string
	Target     string // compiled lane target, hwy.LaneTarget
	Dispatch   string // detected CPU level, hwy.CurrentName()
	LaneWidth  int
	Fused      bool
	Size       int
	Lanes      int
	Reference  float64
	Algorithms []AlgorithmReport
}

// Options configures Run.
type Options struct {
	// Size is the vector length; it must be a positive multiple of
	// hwy.LaneWidth.
	Size int
	// Runs is the number of timed invocations per algorithm.
	Runs int
	// Algorithms to time, in order. Empty means dot.Algorithms().
	Algorithms []dot.Algorithm
	// Logger receives per-run debug entries. Nil discards them.
	Logger logrus.FieldLogger
}

// SampleVectors returns the benchmark operands u and v of length n with
// u[i] = i and v[n-1-i] = i.
func SampleVectors(n int) (dot.Vector, dot.Vector, error) {
	u, err := dot.NewVector(n)
	if err != nil {
		return dot.Vector{}, dot.Vector{}, err
	}
	v, err := dot.NewVector(n)
	if err != nil {
		return dot.Vector{}, dot.Vector{}, err
	}
	for i := range n {
		u.Set(i, float32(i))
		v.Set(n-1-i, float32(i))
	}
	return u, v, nil
}

// Run times every requested algorithm on the sample vectors. The context is
// checked between runs; an in-flight dot product is never interrupted.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Size <= 0 {
		return Report{}, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidOptions, opts.Size)
	}
	if opts.Runs < 1 {
		return Report{}, fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalidOptions, opts.Runs)
	}
	algos := opts.Algorithms
	if len(algos) == 0 {
		algos = dot.Algorithms()
	}
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	u, v, err := SampleVectors(opts.Size)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		RunID:     uuid.NewString(),
		Target:    hwy.LaneTarget,
		Dispatch:  hwy.CurrentName(),
		LaneWidth: hwy.LaneWidth,
		Fused:     hwy.HasFusedMulReduce(),
		Size:      u.Len(),
		Lanes:     u.NumLanes(),
		Reference: dot.Reference(u, v),
	}
	log = log.WithField("run_id", report.RunID)

	for _, algo := range algos {
		fn := algo.Func()
		if fn == nil {
			return Report{}, fmt.Errorf("%w: %v", dot.ErrUnknownAlgorithm, algo)
		}

		runs := make([]RunResult, 0, opts.Runs)
		for i := range opts.Runs {
			if err := ctx.Err(); err != nil {
				return Report{}, fmt.Errorf("%s run %d: %w", algo, i+1, err)
			}
			start := time.Now()
			value, err := fn(u, v)
			elapsed := time.Since(start)
			if err != nil {
				return Report{}, fmt.Errorf("%s run %d: %w", algo, i+1, err)
			}
			runs = append(runs, RunResult{
				Algorithm: algo.String(),
				Index:     i,
				Cold:      i == 0,
				Duration:  elapsed,
				Value:     value,
			})
			log.WithFields(logrus.Fields{
				"algorithm": algo.String(),
				"run":       i + 1,
				"value":     value,
				"elapsed":   elapsed,
			}).Debug("dot product run")
		}

		last := runs[len(runs)-1]
		ar := AlgorithmReport{
			Name:     algo.String(),
			Value:    last.Value,
			RelError: relativeError(float64(last.Value), report.Reference),
			Stats:    ComputeStats(lo.Map(runs, func(r RunResult, _ int) time.Duration { return r.Duration })),
			Runs:     runs,
		}
		log.WithFields(logrus.Fields{
			"algorithm": ar.Name,
			"value":     ar.Value,
			"rel_error": ar.RelError,
			"mean":      ar.Stats.Mean,
		}).Info("algorithm finished")
		report.Algorithms = append(report.Algorithms, ar)
	}

	return report, nil
}

func relativeError(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// ---------------------------------------------------------------------------
// Tolerance gate
// ---------------------------------------------------------------------------

// CheckTolerance returns an error naming every algorithm whose relative
// error exceeds tol. A tol of 0 disables the gate.
func CheckTolerance(report Report, tol float64) error {
	if tol <= 0 {
		return nil
	}
	bad := lo.Filter(report.Algorithms, func(a AlgorithmReport, _ int) bool {
		return !(a.RelError <= tol) // NaN fails the gate too
	})
	if len(bad) == 0 {
		return nil
	}
	names := lo.Map(bad, func(a AlgorithmReport, _ int) string {
		return fmt.Sprintf("%s (%.3g)", a.Name, a.RelError)
	})
	return fmt.Errorf("relative error above %g: %v", tol, names)
}
