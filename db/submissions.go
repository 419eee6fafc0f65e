// ABOUTME: Submission history database operations
// ABOUTME: Records submission outcomes and lists them for review
package db

import (
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/quickflip/quickflip/models"
)

// RecordSubmission stores a submission outcome. An ID and timestamp are
// assigned when missing.
func RecordSubmission(db *sql.DB, sub *models.Submission) error {
	if sub.ID == "" {
		sub.ID = ulid.Make().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	_, err := db.Exec(`
		INSERT INTO submissions (id, deal_id, rank, stage, address, city, state, asking_price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sub.ID, sub.DealID, sub.Rank, sub.Stage.String(), sub.Address, sub.City, sub.State, sub.AskingPrice, sub.CreatedAt)

	return err
}

// ListSubmissions returns the most recent submissions, newest first.
func ListSubmissions(db *sql.DB, limit int) ([]models.Submission, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.Query(`
		SELECT id, deal_id, rank, stage, address, city, state, asking_price, created_at
		FROM submissions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		var sub models.Submission
		var rank sql.NullString
		var stage string

		if err := rows.Scan(&sub.ID, &sub.DealID, &rank, &stage, &sub.Address, &sub.City, &sub.State, &sub.AskingPrice, &sub.CreatedAt); err != nil {
			return nil, err
		}

		if rank.Valid {
			sub.Rank = rank.String
		}
		if s, ok := models.ParseStage(stage); ok {
			sub.Stage = s
		}

		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

// GetSubmission looks up one recorded submission by its deal ID.
func GetSubmission(db *sql.DB, dealID string) (*models.Submission, error) {
	sub := &models.Submission{}
	var rank sql.NullString
	var stage string

	err := db.QueryRow(`
		SELECT id, deal_id, rank, stage, address, city, state, asking_price, created_at
		FROM submissions WHERE deal_id = ?
		ORDER BY created_at DESC LIMIT 1
	`, dealID).Scan(&sub.ID, &sub.DealID, &rank, &stage, &sub.Address, &sub.City, &sub.State, &sub.AskingPrice, &sub.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if rank.Valid {
		sub.Rank = rank.String
	}
	if s, ok := models.ParseStage(stage); ok {
		sub.Stage = s
	}

	return sub, nil
}
