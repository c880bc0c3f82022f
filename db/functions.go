package db

import (
	"database/sql"
	"fmt"
)

// InsertExtraction records one extraction attempt and returns its ID.
func InsertExtraction(db *sql.DB, e Extraction) (int64, error) {
	result, err := db.Exec(
		`INSERT INTO extractions (source_path, output_path, start_seconds, end_seconds, status, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SourcePath, e.OutputPath, e.StartSeconds, e.EndSeconds, e.Status, e.Error,
	)
	if err != nil {
		return 0, fmt.Errorf("insert extraction: %w", err)
	}
	return result.LastInsertId()
}

// SelectRecentExtractions returns up to limit recorded extractions, newest
// first.
func SelectRecentExtractions(db *sql.DB, limit int) ([]Extraction, error) {
	rows, err := db.Query(
		`SELECT id, source_path, output_path, start_seconds, end_seconds, status, error, created_at
		 FROM extractions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select extractions: %w", err)
	}
	defer rows.Close()

	var out []Extraction
	for rows.Next() {
		var e Extraction
		var errText sql.NullString
		if err := rows.Scan(&e.ID, &e.SourcePath, &e.OutputPath, &e.StartSeconds,
			&e.EndSeconds, &e.Status, &errText, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan extraction: %w", err)
		}
		e.Error = errText.String
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate extractions: %w", err)
	}
	return out, nil
}

// DeleteAllExtractions wipes the extraction history and returns the number
// of rows removed.
func DeleteAllExtractions(db *sql.DB) (int64, error) {
	result, err := db.Exec(`DELETE FROM extractions`)
	if err != nil {
		return 0, fmt.Errorf("delete extractions: %w", err)
	}
	return result.RowsAffected()
}
