package extract

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/genomeml/varset/internal/variant"
	"github.com/genomeml/varset/internal/vcf"
)

// SkipFunc receives records dropped by a soft filter, with the reason.
type SkipFunc func(rec *vcf.Record, reason string)

// openParser opens a VCF path; a variable so tests can intercept the
// source lifecycle.
var openParser = func(path string) (vcf.RecordSource, error) {
	return vcf.NewParser(path)
}

// Extractor filters, classifies and expands VCF records into labeled
// variants. Soft-filtered records go to the skip callback; every other
// failure is fatal for the whole file.
type Extractor struct {
	logger *zap.Logger
	onSkip SkipFunc
}

// New creates a new extractor.
func New() *Extractor {
	return &Extractor{
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for diagnostic messages.
func (e *Extractor) SetLogger(l *zap.Logger) {
	e.logger = l
}

// SetSkipFunc registers a callback invoked for each soft-filtered
// record. Useful for tests and skip reporting.
func (e *Extractor) SetSkipFunc(fn SkipFunc) {
	e.onSkip = fn
}

// Extract produces the normalized variants of one VCF/BAM pair.
//
// src may be nil, in which case vcfPath is opened; the path must then
// reference a compressed (.gz) file with an accompanying index. When a
// source is supplied the extractor does not close it, and vcfPath is
// recorded as provenance only.
//
// Unless isFP is set the file must declare exactly one sample, and
// every sample of every record must be called.
func (e *Extractor) Extract(src vcf.RecordSource, vcfPath, bamPath string, isFP bool) ([]variant.Variant, error) {
	if src == nil {
		if vcfPath == "" {
			return nil, &ConfigError{Msg: "a vcf path or an open record source is required"}
		}
		if !strings.HasSuffix(vcfPath, ".gz") {
			return nil, &ConfigError{Msg: fmt.Sprintf("vcf file %s must be compressed and indexed", vcfPath)}
		}
		parser, err := openParser(vcfPath)
		if err != nil {
			return nil, &ConfigError{Msg: "open vcf file " + vcfPath, Err: err}
		}
		defer parser.Close()
		src = parser
	}

	sampleCount := len(src.SampleNames())
	if !isFP && sampleCount != 1 {
		return nil, &UnsupportedInputError{
			Path:   vcfPath,
			Reason: fmt.Sprintf("only single-sample VCFs are supported for true-positive input, found %d samples", sampleCount),
		}
	}

	var out []variant.Variant
	for {
		rec, err := src.Next()
		if err != nil {
			return nil, fmt.Errorf("read record from %s: %w", vcfPath, err)
		}
		if rec == nil {
			return out, nil
		}

		// An incompletely called record makes a true-positive truth
		// file unreliable, so this is a hard stop rather than a skip.
		if !isFP && rec.NumCalled() < sampleCount {
			return nil, &MalformedRecordError{
				Path:   vcfPath,
				Record: rec.String(),
				Reason: "all samples must be called in a true-positive VCF",
			}
		}

		if !rec.IsSNP() {
			e.skip(rec, "not a SNP record")
			continue
		}
		if len(rec.Alts) > 1 {
			e.skip(rec, "multiallele records are not supported")
			continue
		}

		zyg, err := variant.ClassifyZygosity(rec.NumHet(), rec.NumHomAlt(), isFP)
		if err != nil {
			return nil, &MalformedRecordError{Path: vcfPath, Record: rec.String(), Reason: "zygosity", Err: err}
		}
		typ, err := variant.ClassifyType(rec.IsSNP(), rec.IsIndel(), rec.IsDeletion())
		if err != nil {
			return nil, &MalformedRecordError{Path: vcfPath, Record: rec.String(), Reason: "variant type", Err: err}
		}

		expanded, err := expandRecord(rec, vcfPath, bamPath, isFP, zyg, typ)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
}

// skip reports a soft-filtered record and moves on.
func (e *Extractor) skip(rec *vcf.Record, reason string) {
	e.logger.Warn("record filtered",
		zap.String("record", rec.String()),
		zap.String("reason", reason))
	if e.onSkip != nil {
		e.onSkip(rec, reason)
	}
}

// expandRecord produces one Variant per alternate allele, in declared
// order. The multiallele filter means this is a single variant in
// practice; the loop is kept so a relaxed filter needs no rework here.
func expandRecord(rec *vcf.Record, vcfPath, bamPath string, isFP bool, zyg variant.Zygosity, typ variant.Type) ([]variant.Variant, error) {
	var format []string
	switch {
	case rec.Format != "":
		format = strings.Split(rec.Format, ":")
	case isFP:
		format = []string{}
	default:
		return nil, &MalformedRecordError{
			Path:   vcfPath,
			Record: rec.String(),
			Reason: "could not parse format field",
		}
	}

	samples := make([][]string, len(rec.Samples))
	for i := range rec.Samples {
		samples[i] = rec.Samples[i].Values
	}

	out := make([]variant.Variant, 0, len(rec.Alts))
	for _, alt := range rec.Alts {
		out = append(out, variant.Variant{
			Chrom:    rec.Chrom,
			Pos:      rec.Pos,
			ID:       rec.ID,
			Ref:      rec.Ref,
			Alt:      alt,
			Qual:     rec.Qual,
			Filter:   rec.Filter,
			Info:     rec.Info,
			Format:   format,
			Samples:  samples,
			Zygosity: zyg,
			Type:     typ,
			VCF:      vcfPath,
			BAM:      bamPath,
		})
	}
	return out, nil
}
