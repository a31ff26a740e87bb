package main

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/genomeml/varset/internal/collection"
	"github.com/genomeml/varset/internal/store"
	"github.com/genomeml/varset/internal/variant"
	"github.com/genomeml/varset/internal/vcf"
)

func newBuildCmd() *cobra.Command {
	var (
		dbPath  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "build <pairs.yaml>",
		Short: "Build a labeled variant collection from a VCF/BAM pair list",
		Long: `Build reads a YAML pair list, extracts and classifies the variants of
each VCF/BAM pair, and reports a per-file summary. The pair list:

  pairs:
    - vcf: truth.vcf.gz
      bam: truth.bam
    - vcf: fp.vcf.gz
      bam: fp.bam
      is_fp: true

Every VCF must be compressed (.gz) and indexed. True-positive files
must declare exactly one sample.`,
		Example: `  varset build pairs.yaml
  varset build --db variants.duckdb --workers 4 pairs.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], dbPath, workers)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "export the collection to a DuckDB file")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of files to extract concurrently (default: build.workers config, or 1)")

	return cmd
}

func runBuild(pairsPath, dbPath string, workers int) error {
	logger := newLogger()
	defer logger.Sync()

	if workers < 1 {
		workers = viper.GetInt("build.workers")
	}

	pairs, err := collection.LoadPairs(pairsPath)
	if err != nil {
		return err
	}

	var skipped atomic.Int64
	opts := []collection.Option{
		collection.WithLogger(logger),
		collection.WithSkipFunc(func(rec *vcf.Record, reason string) {
			skipped.Add(1)
		}),
	}
	if workers > 1 {
		opts = append(opts, collection.WithWorkers(workers))
	}

	c, err := collection.New(pairs, opts...)
	if err != nil {
		return err
	}

	logger.Info("collection built",
		zap.Int("pairs", len(pairs)),
		zap.Int("variants", c.Len()),
		zap.Int64("skipped", skipped.Load()))

	printSummary(pairs, c)

	if dbPath != "" {
		if err := exportCollection(c, dbPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d variants to %s\n", c.Len(), dbPath)
	}

	return nil
}

// printSummary renders a per-pair variant count table on stdout.
func printSummary(pairs []collection.Pair, c *collection.Collection) {
	counts := c.Counts()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"VCF", "Label", "Variants"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for i, p := range pairs {
		label := "true-positive"
		if p.IsFP {
			label = "false-positive"
		}
		table.Append([]string{p.VCF, label, fmt.Sprintf("%d", counts[i])})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(pairs)),
		"",
		fmt.Sprintf("%d", c.Len()),
	})

	table.Render()
}

// exportCollection writes the full collection to a DuckDB store.
func exportCollection(c *collection.Collection, dbPath string) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	vars := make([]variant.Variant, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		v, err := c.At(i)
		if err != nil {
			return err
		}
		vars = append(vars, v)
	}
	return s.WriteVariants(vars)
}
