package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mooddine/internal/model"
)

// ErrAlreadyShortlisted is returned when the same name and area is added twice.
var ErrAlreadyShortlisted = errors.New("place is already on the shortlist")

// ListShortlist returns all shortlist entries, newest first.
func ListShortlist(db *sql.DB) ([]model.ShortlistEntry, error) {
	rows, err := db.Query(`
		SELECT id, name, COALESCE(category, ''), area, COALESCE(mood, ''),
		       COALESCE(rating, 0), COALESCE(cost, 0), COALESCE(score, 0),
		       COALESCE(notes, ''), created_at
		FROM shortlist
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortlist: %w", err)
	}
	defer rows.Close()

	var results []model.ShortlistEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shortlist row: %w", err)
		}
		results = append(results, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shortlist rows: %w", err)
	}

	return results, nil
}

// GetShortlist returns a single shortlist entry by ID.
func GetShortlist(db *sql.DB, id int64) (model.ShortlistEntry, error) {
	row := db.QueryRow(`
		SELECT id, name, COALESCE(category, ''), area, COALESCE(mood, ''),
		       COALESCE(rating, 0), COALESCE(cost, 0), COALESCE(score, 0),
		       COALESCE(notes, ''), created_at
		FROM shortlist
		WHERE id = ?
	`, id)
	e, err := scanEntry(row)
	if err != nil {
		return model.ShortlistEntry{}, fmt.Errorf("failed to get shortlist entry: %w", err)
	}
	return e, nil
}

// AddShortlist stores a new shortlist entry and returns its ID.
func AddShortlist(db *sql.DB, e model.NewShortlistEntry) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO shortlist (name, category, area, mood, rating, cost, score, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name, area) DO NOTHING
	`, e.Name, e.Category, e.Area, string(e.Mood), e.Rating, e.Cost, e.Score, e.Notes)
	if err != nil {
		return 0, fmt.Errorf("failed to add to shortlist: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to add to shortlist: %w", err)
	}
	if n == 0 {
		return 0, ErrAlreadyShortlisted
	}
	return result.LastInsertId()
}

// DeleteShortlist deletes a shortlist entry.
func DeleteShortlist(db *sql.DB, id int64) error {
	if _, err := db.Exec("DELETE FROM shortlist WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete shortlist entry: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (model.ShortlistEntry, error) {
	var e model.ShortlistEntry
	var mood, createdAt string
	if err := s.Scan(&e.ID, &e.Name, &e.Category, &e.Area, &mood, &e.Rating, &e.Cost, &e.Score, &e.Notes, &createdAt); err != nil {
		return e, err
	}
	e.Mood = model.Mood(mood)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		e.CreatedAt = t
	}
	return e, nil
}
