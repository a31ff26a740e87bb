package vcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Predicates(t *testing.T) {
	tests := []struct {
		name       string
		ref        string
		alts       []string
		isSNP      bool
		isIndel    bool
		isDeletion bool
	}{
		{"snp", "G", []string{"T"}, true, false, false},
		{"multiallelic snp", "G", []string{"T", "C"}, true, false, false},
		{"insertion", "G", []string{"GAA"}, false, true, false},
		{"deletion", "GAA", []string{"G"}, false, true, true},
		{"mixed alt lengths", "GA", []string{"G", "GAAT"}, false, true, false},
		{"mnp same length", "GA", []string{"TC"}, false, false, false},
		{"missing alt", "G", []string{"."}, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{Ref: tt.ref, Alts: tt.alts}
			assert.Equal(t, tt.isSNP, r.IsSNP(), "IsSNP")
			assert.Equal(t, tt.isIndel, r.IsIndel(), "IsIndel")
			assert.Equal(t, tt.isDeletion, r.IsDeletion(), "IsDeletion")
		})
	}
}

func TestRecord_String(t *testing.T) {
	r := &Record{Chrom: "chr1", Pos: 240, Ref: "G", Alts: []string{"T", "C"}}
	assert.Equal(t, "chr1:240 G>T,C", r.String())
}

func TestGenotype_Zygosity(t *testing.T) {
	tests := []struct {
		raw    string
		called bool
		class  gtClass
	}{
		{"0/0", true, gtHomRef},
		{"0/1", true, gtHet},
		{"1/0", true, gtHet},
		{"1/1", true, gtHomAlt},
		{"1|1", true, gtHomAlt},
		{"1/2", true, gtHet},
		{"2/2", true, gtHomAlt},
		{"./.", false, gtUncalled},
		{"0/.", false, gtUncalled},
		{".", false, gtUncalled},
		{"", false, gtUncalled},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			g := parseGenotype(tt.raw)
			assert.Equal(t, tt.called, g.called(), "called")
			assert.Equal(t, tt.class, g.zygosity(), "zygosity")
		})
	}
}
