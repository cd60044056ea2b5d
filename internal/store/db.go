package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the run-history database and creates its tables. Runs,
// their stage progress, and any fatal error are the only things kept,
// never the library records or the aggregates themselves.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		library_path TEXT,
		status TEXT,
		track_count INTEGER DEFAULT 0,
		album_count INTEGER DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	stageTable := `
	CREATE TABLE IF NOT EXISTS run_stages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		stage TEXT,
		status TEXT,
		started_at DATETIME,
		finished_at DATETIME,
		record_count INTEGER DEFAULT 0
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{runTable, stageTable, errorTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database handle. Safe to call when InitDB failed.
func Close() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// SaveRun records a new run in "pending" state.
func SaveRun(runID, libraryPath string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO runs (id, library_path, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, libraryPath, "pending", now, now)
	return err
}

// UpdateRunStatus moves a run through its lifecycle
// (pending -> parsing -> aggregating -> exporting -> completed/failed).
func UpdateRunStatus(runID, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SetRunCounts stores the headline numbers once aggregation is done.
func SetRunCounts(runID string, trackCount, albumCount int) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET track_count = ?, album_count = ?, updated_at = ? WHERE id = ?`,
		trackCount, albumCount, now, runID)
	return err
}

// SaveStageProgress appends a stage progress row for a run.
func SaveStageProgress(runID, stage, status string, startedAt, finishedAt *time.Time, recordCount int) error {
	_, err := db.Exec(`INSERT INTO run_stages (run_id, stage, status, started_at, finished_at, record_count) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, stage, status, startedAt, finishedAt, recordCount)
	return err
}

// SaveRunError records a fatal error for a run.
func SaveRunError(runID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, err.Error(), now)
	return e
}

// ListRuns returns all runs, newest first.
func ListRuns() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, library_path, status, track_count, album_count, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, libraryPath, status string
		var trackCount, albumCount int
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &libraryPath, &status, &trackCount, &albumCount, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":          id,
			"libraryPath": libraryPath,
			"status":      status,
			"trackCount":  trackCount,
			"albumCount":  albumCount,
			"createdAt":   createdAt,
			"updatedAt":   updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches one run with its stage history.
func GetRun(runID string) (map[string]interface{}, error) {
	var libraryPath, status string
	var trackCount, albumCount int
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT library_path, status, track_count, album_count, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&libraryPath, &status, &trackCount, &albumCount, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	stages, err := runStages(runID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":          runID,
		"libraryPath": libraryPath,
		"status":      status,
		"trackCount":  trackCount,
		"albumCount":  albumCount,
		"createdAt":   createdAt,
		"updatedAt":   updatedAt,
		"stages":      stages,
	}, nil
}

func runStages(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT stage, status, started_at, finished_at, record_count FROM run_stages WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []map[string]interface{}
	for rows.Next() {
		var stage, status string
		var startedAt, finishedAt sql.NullTime
		var recordCount int
		if err := rows.Scan(&stage, &status, &startedAt, &finishedAt, &recordCount); err != nil {
			return nil, err
		}
		entry := map[string]interface{}{
			"stage":       stage,
			"status":      status,
			"recordCount": recordCount,
		}
		if startedAt.Valid {
			entry["startedAt"] = startedAt.Time
		}
		if finishedAt.Valid {
			entry["finishedAt"] = finishedAt.Time
		}
		stages = append(stages, entry)
	}
	return stages, rows.Err()
}

// GetRunErrors returns the recorded errors for a run, oldest first.
func GetRunErrors(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM run_errors WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errs []map[string]interface{}
	for rows.Next() {
		var message string
		var createdAt time.Time
		if err := rows.Scan(&message, &createdAt); err != nil {
			return nil, err
		}
		errs = append(errs, map[string]interface{}{
			"error":     message,
			"createdAt": createdAt,
		})
	}
	return errs, rows.Err()
}
