package vcf

import (
	"strconv"
	"strings"
)

// gtClass is the zygosity class of a single genotype call.
type gtClass int

const (
	gtUncalled gtClass = iota
	gtHomRef
	gtHet
	gtHomAlt
)

// genotype is a parsed GT field value, e.g. "0/1", "1|1", "./.".
type genotype struct {
	raw     string
	alleles []int // -1 for "."
}

// parseGenotype parses a raw GT string. Both "/" and "|" separators are
// accepted; a missing or empty GT yields an uncalled genotype.
func parseGenotype(raw string) genotype {
	g := genotype{raw: raw}
	if raw == "" || raw == "." {
		return g
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '/' || r == '|'
	})
	for _, f := range fields {
		if f == "." {
			g.alleles = append(g.alleles, -1)
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			g.alleles = append(g.alleles, -1)
			continue
		}
		g.alleles = append(g.alleles, n)
	}
	return g
}

// called reports whether every allele in the genotype is known.
func (g *genotype) called() bool {
	if len(g.alleles) == 0 {
		return false
	}
	for _, a := range g.alleles {
		if a < 0 {
			return false
		}
	}
	return true
}

// zygosity classifies the call: all-zero alleles are homozygous
// reference, all-equal non-zero are homozygous alternate, anything
// else called is heterozygous.
func (g *genotype) zygosity() gtClass {
	if !g.called() {
		return gtUncalled
	}
	first := g.alleles[0]
	for _, a := range g.alleles[1:] {
		if a != first {
			return gtHet
		}
	}
	if first == 0 {
		return gtHomRef
	}
	return gtHomAlt
}
