package collection

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomeml/varset/internal/extract"
	"github.com/genomeml/varset/internal/variant"
	"github.com/genomeml/varset/internal/vcf"
)

const truthVCF = `##fileformat=VCFv4.2
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	s1
1	100	.	G	T	50	PASS	.	GT	0/1
1	200	.	C	A	50	PASS	.	GT	1/1
1	300	.	A	AT	50	PASS	.	GT	0/1
`

const fpVCF = `##fileformat=VCFv4.2
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	s1
2	400	.	T	G	30	PASS	.	GT	0/0
`

func writeGzippedVCF(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

func testPairs(t *testing.T) []Pair {
	t.Helper()
	dir := t.TempDir()
	truthPath := filepath.Join(dir, "truth.vcf.gz")
	fpPath := filepath.Join(dir, "fp.vcf.gz")
	writeGzippedVCF(t, truthPath, truthVCF)
	writeGzippedVCF(t, fpPath, fpVCF)
	return []Pair{
		{VCF: truthPath, BAM: filepath.Join(dir, "truth.bam")},
		{VCF: fpPath, BAM: filepath.Join(dir, "fp.bam"), IsFP: true},
	}
}

func TestNew_OrderAndLabels(t *testing.T) {
	pairs := testPairs(t)

	c, err := New(pairs)
	require.NoError(t, err)

	// The indel record in the truth file is soft-filtered.
	require.Equal(t, 3, c.Len())
	assert.Equal(t, []int{2, 1}, c.Counts())

	v0, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, int64(100), v0.Pos)
	assert.Equal(t, variant.Heterozygous, v0.Zygosity)
	assert.Equal(t, pairs[0].VCF, v0.VCF)
	assert.Equal(t, pairs[0].BAM, v0.BAM)

	v1, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, int64(200), v1.Pos)
	assert.Equal(t, variant.Homozygous, v1.Zygosity)

	v2, err := c.At(2)
	require.NoError(t, err)
	assert.Equal(t, int64(400), v2.Pos)
	assert.Equal(t, variant.NoVariant, v2.Zygosity)
	assert.Equal(t, pairs[1].VCF, v2.VCF)
}

func TestAt_OutOfRange(t *testing.T) {
	c, err := New(testPairs(t))
	require.NoError(t, err)

	for _, i := range []int{-1, c.Len(), c.Len() + 10} {
		_, err := c.At(i)
		var ierr *IndexError
		require.ErrorAs(t, err, &ierr, "index %d", i)
		assert.Equal(t, i, ierr.Index)
	}
}

func TestCounts_ReturnsCopy(t *testing.T) {
	c, err := New(testPairs(t))
	require.NoError(t, err)

	counts := c.Counts()
	require.Equal(t, []int{2, 1}, counts)

	counts[0] = 99
	assert.Equal(t, []int{2, 1}, c.Counts(), "mutating the returned slice must not touch the collection")
}

func TestNew_ValidatesPairsBeforeIO(t *testing.T) {
	// The first pair points at a file that does not exist; the config
	// error for the second pair must still win, proving validation
	// runs before any open.
	pairs := []Pair{
		{VCF: "/nonexistent/truth.vcf.gz", BAM: "truth.bam"},
		{VCF: "fp.vcf.gz", BAM: ""},
	}

	_, err := New(pairs)
	var cerr *extract.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Msg, "pair 1: bam path is required")
}

func TestNew_MissingVCFPath(t *testing.T) {
	_, err := New([]Pair{{BAM: "a.bam"}})
	var cerr *extract.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Msg, "vcf path is required")
}

func TestNew_FatalErrorAbortsWholeBuild(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.vcf.gz")
	bad := filepath.Join(dir, "bad.vcf.gz")
	writeGzippedVCF(t, good, truthVCF)
	// Two declared samples makes a true-positive file unsupported.
	writeGzippedVCF(t, bad, `##fileformat=VCFv4.2
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	s1	s2
1	100	.	G	T	50	PASS	.	GT	0/1	0/1
`)

	c, err := New([]Pair{
		{VCF: good, BAM: "good.bam"},
		{VCF: bad, BAM: "bad.bam"},
	})
	var uerr *extract.UnsupportedInputError
	require.ErrorAs(t, err, &uerr)
	assert.Nil(t, c, "no partial collection on fatal error")
}

func TestNew_ParallelMatchesSequential(t *testing.T) {
	pairs := testPairs(t)

	seq, err := New(pairs)
	require.NoError(t, err)
	par, err := New(pairs, WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, seq.Len(), par.Len())
	for i := 0; i < seq.Len(); i++ {
		a, err := seq.At(i)
		require.NoError(t, err)
		b, err := par.At(i)
		require.NoError(t, err)
		assert.Equal(t, a, b, "variant %d", i)
	}
}

func TestNew_SkipFuncReceivesDiagnostics(t *testing.T) {
	var reasons []string
	_, err := New(testPairs(t), WithSkipFunc(func(rec *vcf.Record, reason string) {
		reasons = append(reasons, reason)
	}))
	require.NoError(t, err)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "not a SNP")
}

func TestLoadPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`pairs:
  - vcf: truth.vcf.gz
    bam: truth.bam
  - vcf: fp.vcf.gz
    bam: fp.bam
    is_fp: true
`), 0o644))

	pairs, err := LoadPairs(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "truth.vcf.gz", pairs[0].VCF)
	assert.False(t, pairs[0].IsFP)
	assert.True(t, pairs[1].IsFP)
}

func TestLoadPairs_UnknownKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`pairs:
  - vcf: truth.vcf.gz
    bam: truth.bam
    false_positive: true
`), 0o644))

	_, err := LoadPairs(path)
	require.Error(t, err)
}

func TestLoadPairs_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pairs: []\n"), 0o644))

	_, err := LoadPairs(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pairs")
}
