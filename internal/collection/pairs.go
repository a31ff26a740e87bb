package collection

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// pairFile is the on-disk shape of a pair list.
type pairFile struct {
	Pairs []Pair `yaml:"pairs"`
}

// LoadPairs reads a YAML pair list:
//
//	pairs:
//	  - vcf: truth.vcf.gz
//	    bam: truth.bam
//	  - vcf: fp.vcf.gz
//	    bam: fp.bam
//	    is_fp: true
//
// Unknown keys are rejected so typos fail loudly.
func LoadPairs(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pair list: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var pf pairFile
	if err := dec.Decode(&pf); err != nil {
		return nil, fmt.Errorf("decode pair list %s: %w", path, err)
	}
	if len(pf.Pairs) == 0 {
		return nil, fmt.Errorf("pair list %s declares no pairs", path)
	}
	return pf.Pairs, nil
}
