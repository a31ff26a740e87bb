// Package vcf provides VCF file parsing functionality.
package vcf

import (
	"fmt"
	"strings"
)

// Record represents a single data line from a VCF file, before any
// normalization. Unlike a normalized variant it keeps the full list of
// alternate alleles and the raw FORMAT/sample columns.
type Record struct {
	Chrom   string                 // Chromosome name (e.g., "12", "chr12")
	Pos     int64                  // 1-based genomic position
	ID      string                 // Variant identifier (e.g., rs ID)
	Ref     string                 // Reference allele
	Alts    []string               // Alternate alleles as declared
	Qual    float64                // Quality score, 0 when the column is "."
	Filter  string                 // Filter status (PASS or filter name)
	Info    map[string]interface{} // INFO field key-value pairs
	Format  string                 // Raw FORMAT column, "" if the line has none
	Samples []Sample               // One entry per sample column
}

// Sample holds one sample column of a record.
type Sample struct {
	Name   string   // Sample name from the #CHROM header line
	Values []string // Field values in FORMAT order
	gt     genotype
}

// GT returns the raw genotype string, or "" if the sample has no GT field.
func (s *Sample) GT() string {
	return s.gt.raw
}

// IsSNP returns true if the record is a single nucleotide polymorphism:
// a one-base reference and every alternate allele exactly one base.
func (r *Record) IsSNP() bool {
	if len(r.Ref) != 1 || len(r.Alts) == 0 {
		return false
	}
	for _, alt := range r.Alts {
		if len(alt) != 1 || alt == "." {
			return false
		}
	}
	return true
}

// IsIndel returns true if any alternate allele differs in length from
// the reference.
func (r *Record) IsIndel() bool {
	for _, alt := range r.Alts {
		if alt == "." || len(alt) != len(r.Ref) {
			return true
		}
	}
	return false
}

// IsDeletion returns true if the record is an indel where every
// alternate allele is shorter than the reference.
func (r *Record) IsDeletion() bool {
	if !r.IsIndel() {
		return false
	}
	for _, alt := range r.Alts {
		if alt != "." && len(alt) >= len(r.Ref) {
			return false
		}
	}
	return true
}

// NumCalled returns the number of samples with a fully called genotype.
func (r *Record) NumCalled() int {
	n := 0
	for i := range r.Samples {
		if r.Samples[i].gt.called() {
			n++
		}
	}
	return n
}

// NumHet returns the number of samples with a heterozygous genotype call.
func (r *Record) NumHet() int {
	n := 0
	for i := range r.Samples {
		if r.Samples[i].gt.zygosity() == gtHet {
			n++
		}
	}
	return n
}

// NumHomAlt returns the number of samples with a homozygous-alternate
// genotype call.
func (r *Record) NumHomAlt() int {
	n := 0
	for i := range r.Samples {
		if r.Samples[i].gt.zygosity() == gtHomAlt {
			n++
		}
	}
	return n
}

// String identifies the record for diagnostics and error messages.
func (r *Record) String() string {
	return fmt.Sprintf("%s:%d %s>%s", r.Chrom, r.Pos, r.Ref, strings.Join(r.Alts, ","))
}
