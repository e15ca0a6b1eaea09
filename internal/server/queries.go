package server

import (
	"database/sql"
	"fmt"
)

// rowsToMaps drains a generic SELECT into JSON-friendly maps, normalizing
// byte slices to strings.
func rowsToMaps(rows *sql.Rows) ([]map[string]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var results []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
			} else {
				row[column] = values[i]
			}
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (s *Server) queryMaps(query string, args ...any) ([]map[string]any, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()
	return rowsToMaps(rows)
}

func (s *Server) countsBy(column string) (map[string]int, error) {
	rows, err := s.db.Query(fmt.Sprintf(
		"SELECT %s, COUNT(*) FROM interactions GROUP BY %s ORDER BY COUNT(*) DESC", column, column,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to count by %s: %w", column, err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return nil, err
		}
		counts[value] = count
	}
	return counts, rows.Err()
}

func (s *Server) sampleTexts(category string, limit int) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT interaction_text FROM interactions WHERE category = ? LIMIT ?", category, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sample texts: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, rows.Err()
}
