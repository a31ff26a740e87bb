// Package variant defines the normalized variant data model and the
// zygosity/type classification rules.
package variant

// Zygosity is the genotype label of a normalized variant.
type Zygosity int

const (
	// NoVariant labels false-positive truth records, used as the
	// negative class for training.
	NoVariant Zygosity = iota
	Heterozygous
	Homozygous
)

// String returns the VCF-style label for the zygosity.
func (z Zygosity) String() string {
	switch z {
	case NoVariant:
		return "no_variant"
	case Heterozygous:
		return "heterozygous"
	case Homozygous:
		return "homozygous"
	}
	return "unknown"
}

// Type is the structural class of a normalized variant.
type Type int

const (
	SNP Type = iota
	Insertion
	Deletion
)

// String returns the label for the variant type.
func (t Type) String() string {
	switch t {
	case SNP:
		return "snp"
	case Insertion:
		return "insertion"
	case Deletion:
		return "deletion"
	}
	return "unknown"
}

// Variant is one normalized, labeled variant call. Each value carries
// exactly one alternate allele; multi-allelic source records are split
// (or rejected) before construction. Values are never mutated once
// built.
type Variant struct {
	Chrom    string                 // Chromosome name
	Pos      int64                  // 1-based genomic position
	ID       string                 // Variant identifier, "." if absent
	Ref      string                 // Reference allele
	Alt      string                 // The single alternate allele
	Qual     float64                // Quality score, 0 when absent
	Filter   string                 // Filter status, passed through from the source
	Info     map[string]interface{} // INFO fields, passed through opaque
	Format   []string               // FORMAT field names, may be empty
	Samples  [][]string             // Per-sample values, inner slices in FORMAT order
	Zygosity Zygosity
	Type     Type
	VCF      string // Source VCF path
	BAM      string // Paired BAM path
}
