// Package vcf provides VCF file parsing functionality.
package vcf

// RecordSource is the interface for sources that read VCF records.
// The extractor consumes this contract rather than a concrete parser.
type RecordSource interface {
	// Next reads the next record.
	// Returns nil, nil when there are no more records.
	Next() (*Record, error)

	// SampleNames returns the sample names declared in the header.
	SampleNames() []string

	// Close closes the source and releases resources.
	Close() error
}
