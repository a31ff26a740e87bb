// Package collection builds and owns the ordered set of labeled
// variants produced from a list of VCF/BAM pairs.
package collection

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/genomeml/varset/internal/extract"
	"github.com/genomeml/varset/internal/variant"
)

// Pair is one input entry: a compressed, indexed VCF and its paired
// BAM. IsFP marks the file as false-positive (negative label) input.
type Pair struct {
	VCF  string `yaml:"vcf"`
	BAM  string `yaml:"bam"`
	IsFP bool   `yaml:"is_fp"`
}

// Collection is an ordered, randomly-indexable sequence of variants.
// It is built once and never mutated afterwards.
type Collection struct {
	variants []variant.Variant
	counts   []int
}

// IndexError reports a positional lookup outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

type config struct {
	workers int
	logger  *zap.Logger
	onSkip  extract.SkipFunc
}

// Option configures the collection build.
type Option func(*config)

// WithWorkers extracts up to n files concurrently. The resulting
// sequence is identical to a sequential build: results are assembled
// strictly in caller-supplied pair order.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the logger used during the build.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithSkipFunc registers a callback for soft-filtered records. With
// WithWorkers it may be called from multiple goroutines.
func WithSkipFunc(fn extract.SkipFunc) Option {
	return func(c *config) {
		c.onSkip = fn
	}
}

// New builds a collection from the given pairs. Every pair is
// validated before any file is opened; any fatal extraction error
// aborts the whole build and no partial collection is returned.
func New(pairs []Pair, opts ...Option) (*Collection, error) {
	cfg := config{workers: 1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	for i, p := range pairs {
		if p.VCF == "" {
			return nil, &extract.ConfigError{Msg: fmt.Sprintf("pair %d: vcf path is required", i)}
		}
		if p.BAM == "" {
			return nil, &extract.ConfigError{Msg: fmt.Sprintf("pair %d: bam path is required", i)}
		}
	}

	e := extract.New()
	e.SetLogger(cfg.logger)
	if cfg.onSkip != nil {
		e.SetSkipFunc(cfg.onSkip)
	}

	results := make([][]variant.Variant, len(pairs))

	if cfg.workers > 1 {
		var g errgroup.Group
		g.SetLimit(cfg.workers)
		for i, p := range pairs {
			i, p := i, p
			g.Go(func() error {
				vars, err := e.Extract(nil, p.VCF, p.BAM, p.IsFP)
				if err != nil {
					return err
				}
				results[i] = vars
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, p := range pairs {
			vars, err := e.Extract(nil, p.VCF, p.BAM, p.IsFP)
			if err != nil {
				return nil, err
			}
			results[i] = vars
		}
	}

	c := &Collection{counts: make([]int, len(pairs))}
	for i, vars := range results {
		c.counts[i] = len(vars)
		c.variants = append(c.variants, vars...)
	}
	return c, nil
}

// Len returns the total number of variants in the collection.
func (c *Collection) Len() int {
	return len(c.variants)
}

// At returns the i-th variant in build order.
func (c *Collection) At(i int) (variant.Variant, error) {
	if i < 0 || i >= len(c.variants) {
		return variant.Variant{}, &IndexError{Index: i, Len: len(c.variants)}
	}
	return c.variants[i], nil
}

// Counts returns the number of variants contributed by each pair, in
// caller-supplied order. The returned slice is a copy; the collection
// itself never changes after construction.
func (c *Collection) Counts() []int {
	out := make([]int, len(c.counts))
	copy(out, c.counts)
	return out
}
