package variant

import "fmt"

// ClassificationError reports a record whose genotype counts or
// structural flags do not map to any known label.
type ClassificationError struct {
	Reason string
}

func (e *ClassificationError) Error() string {
	return "classification error: " + e.Reason
}

// ClassifyZygosity maps genotype-call counts to a zygosity label.
// False-positive records are labeled NoVariant without inspecting the
// counts. Heterozygous wins over homozygous when a record reports both.
func ClassifyZygosity(numHet, numHomAlt int, isFP bool) (Zygosity, error) {
	if isFP {
		return NoVariant, nil
	}
	if numHet > 0 {
		return Heterozygous, nil
	}
	if numHomAlt > 0 {
		return Homozygous, nil
	}
	return 0, &ClassificationError{
		Reason: fmt.Sprintf("unexpected zygosity: num_het=%d, num_hom_alt=%d", numHet, numHomAlt),
	}
}

// ClassifyType maps structural flags to a variant type. The insertion
// and deletion arms are kept even though the extractor currently
// filters to SNPs before classifying.
func ClassifyType(isSNP, isIndel, isDeletion bool) (Type, error) {
	if isSNP {
		return SNP, nil
	}
	if isIndel {
		if isDeletion {
			return Deletion, nil
		}
		return Insertion, nil
	}
	return 0, &ClassificationError{Reason: "unexpected variant type: neither SNP nor indel"}
}
