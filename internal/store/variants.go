package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/genomeml/varset/internal/variant"
)

// Row is one exported variant as stored in the variants table.
type Row struct {
	Index    int64
	Chrom    string
	Pos      int64
	ID       string
	Ref      string
	Alt      string
	Qual     float64
	Filter   string
	Format   string
	Zygosity string
	Type     string
	VCF      string
	BAM      string
}

// WriteVariants replaces the stored export with the given variants,
// batch-inserting them via the DuckDB Appender API. The idx column
// records the collection position so build order can be reconstructed
// with ORDER BY idx; existing rows are cleared first so a re-export
// against the same file keeps idx unique.
func (s *Store) WriteVariants(vars []variant.Variant) error {
	if err := s.Clear(); err != nil {
		return err
	}
	if len(vars) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "variants")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for i, v := range vars {
		if err := appender.AppendRow(
			int64(i), v.Chrom, v.Pos, v.ID, v.Ref, v.Alt,
			v.Qual, v.Filter, strings.Join(v.Format, ":"),
			v.Zygosity.String(), v.Type.String(), v.VCF, v.BAM,
		); err != nil {
			return fmt.Errorf("append variant: %w", err)
		}
	}

	return appender.Flush()
}

// Clear removes all exported variants.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM variants")
	if err != nil {
		return fmt.Errorf("clear variants: %w", err)
	}
	return nil
}

// Count returns the number of stored variants.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM variants").Scan(&n); err != nil {
		return 0, fmt.Errorf("count variants: %w", err)
	}
	return n, nil
}

// Head returns up to limit variants in build order.
func (s *Store) Head(limit int) ([]Row, error) {
	rows, err := s.db.Query(`SELECT
		idx, chrom, pos, id, ref, alt, qual, filter, format,
		zygosity, variant_type, vcf, bam
		FROM variants ORDER BY idx LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query variants: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(
			&r.Index, &r.Chrom, &r.Pos, &r.ID, &r.Ref, &r.Alt,
			&r.Qual, &r.Filter, &r.Format, &r.Zygosity, &r.Type,
			&r.VCF, &r.BAM,
		); err != nil {
			return nil, fmt.Errorf("scan variant row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
