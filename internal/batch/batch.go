// Package batch drives the (sequence-group × algorithm × thread-count)
// triples a scoring run is made of, times each one, and emits a RunSummary
// per triple to a caller-supplied sink. Triples run concurrently with each
// other; the errgroup.WithContext/SetLimit/mutex shape below is the same
// one CAMUS's internal/prep.processQuartets uses to fan work out across a
// bounded worker pool and fold results back under a single lock, adapted
// from folding quartet counts into a shared map to folding RunSummaries
// into a sink.
package batch

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tdscan/internal/nucleotide"
	"tdscan/internal/scorer"
	"tdscan/internal/segment"
	"tdscan/internal/smtree"
	"tdscan/internal/synth"
	"tdscan/internal/topk"
)

// Group is one named collection of equal-length homologous sequences to
// score as a unit.
type Group struct {
	Name      string
	Sequences segment.Sequences
}

// Triple names one (group, algorithm, thread-count) unit of work. Threads
// is carried through to RunSummary as a label only: per spec.md §4.10 and
// §5, actual concurrency is the batch runner's concern (via Run's
// concurrency parameter), not a triple's own scoring loop, which stays
// single-threaded and synchronous.
type Triple struct {
	Group   Group
	Algo    scorer.Algorithm
	Threads uint
}

// RunSummary is what a completed triple reports to the sink.
type RunSummary struct {
	Sequences string
	Algo      scorer.Algorithm
	Threads   uint
	Results   []topk.Result
	Elapsed   time.Duration
}

// Sink receives completed RunSummaries. The default sink packaged here
// (Collector) is commutative, so Run need not serialize triples to satisfy
// it; a sink that requires emission in (group, algo, threads) order must
// reorder internally since Run itself does not guarantee it.
type Sink interface {
	Emit(RunSummary) error
}

// Params bundles the scoring configuration shared by every triple in a
// batch run.
type Params struct {
	MinLength  segment.Length
	MaxLength  segment.Length
	LengthStep segment.Length
	Capacity   topk.Capacity
	Epsilon    topk.Epsilon
	States     []nucleotide.Nucleotide
	CostFn     smtree.CostFunc
}

// Run executes every triple in triples, dispatching up to concurrency of
// them at once, and emits one RunSummary per triple to sink. It returns the
// first error encountered by any triple (scorer construction failure or a
// sink error). The first error cancels the shared context: triples already
// running finish, but triples that have not started yet are skipped.
func Run(ctx context.Context, triples []Triple, params Params, concurrency int, sink Sink) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, tr := range triples {
		tr := tr
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := runTriple(tr, params)
			if err != nil {
				return err
			}
			return sink.Emit(summary)
		})
	}
	return g.Wait()
}

func runTriple(tr Triple, params Params) (RunSummary, error) {
	start := time.Now()

	tree, _ := synth.Build(len(tr.Group.Sequences))
	sc, err := scorer.New(tr.Algo, tree, params.States, params.CostFn, tr.Group.Sequences)
	if err != nil {
		return RunSummary{}, err
	}

	bounds := segment.Bounds{
		MinLength:  params.MinLength,
		MaxLength:  params.MaxLength,
		LengthStep: params.LengthStep,
		SeqLength:  tr.Group.Sequences.Length(),
	}
	results := topk.New(params.Capacity, params.Epsilon)
	bounds.Enumerate(func(p segment.Pair) {
		cost := sc.CostFor(p)
		results.Insert(topk.Result{
			Start:         uint(p.Start),
			SegmentLength: uint(p.SegmentLength),
			Cost:          cost,
		})
	})

	return RunSummary{
		Sequences: tr.Group.Name,
		Algo:      tr.Algo,
		Threads:   tr.Threads,
		Results:   results.Snapshot(),
		Elapsed:   time.Since(start),
	}, nil
}

// Collector is the default commutative Sink: it appends every RunSummary it
// receives under a lock, in whatever order Emit is called.
type Collector struct {
	mu        sync.Mutex
	summaries []RunSummary
}

// NewCollector builds an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Emit records summary. Safe for concurrent use.
func (c *Collector) Emit(summary RunSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summaries = append(c.summaries, summary)
	return nil
}

// Summaries returns every RunSummary recorded so far, in emission order.
func (c *Collector) Summaries() []RunSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RunSummary, len(c.summaries))
	copy(out, c.summaries)
	return out
}
