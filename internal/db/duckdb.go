// Package db provides the in-memory DuckDB the serving layer runs its
// aggregate queries against. The six generated CSVs are exposed as views, so
// handlers query them with plain SQL and nothing is persisted.
package db

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/Chetana10r/smart-campaign-targeting/internal/output"
)

var datasetViews = map[string]string{
	"customers":    output.CustomersFile,
	"interactions": output.InteractionsFile,
	"campaigns":    output.CampaignsFile,
	"products":     output.ProductsFile,
	"trends":       output.TrendsFile,
	"mappings":     output.MappingsFile,
}

// Open initializes an in-memory DuckDB with the dataset directory mounted as
// views. The handle is restricted to a single connection; the serving layer
// only reads.
func Open(dataDir string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for view, file := range datasetViews {
		path := filepath.Join(dataDir, file)
		stmt := fmt.Sprintf(
			"CREATE OR REPLACE VIEW %s AS SELECT * FROM read_csv_auto('%s', header = true)",
			view, path,
		)
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to mount %s as view %s: %w", path, view, err)
		}
	}

	return db, nil
}

// RowCounts reports the number of rows behind every dataset view, used by
// startup logging and the health endpoint.
func RowCounts(db *sql.DB) (map[string]int, error) {
	counts := make(map[string]int, len(datasetViews))
	for view := range datasetViews {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + view).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", view, err)
		}
		counts[view] = count
	}
	return counts, nil
}
