package store

import (
	"errors"
	"fmt"

	"github.com/PancyStudios/FlaceManagerGo/pkg/models"
)

// ErrWarningNotFound is returned when a warning ordinal is out of range.
var ErrWarningNotFound = errors.New("warning not found")

// AddWarning appends a warning to the user's log. An empty reason is replaced
// by models.DefaultWarnReason. Warnings are never updated in place.
func (s *Store) AddWarning(userID, reason string) (models.Warning, error) {
	if reason == "" {
		reason = models.DefaultWarnReason
	}

	res, err := s.db.Exec(`INSERT INTO warnings (user_id, reason) VALUES (?, ?)`, userID, reason)
	if err != nil {
		return models.Warning{}, fmt.Errorf("failed to insert warning: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Warning{}, fmt.Errorf("failed to read warning id: %w", err)
	}

	return models.Warning{ID: id, UserID: userID, Reason: reason}, nil
}

// ListWarnings returns the user's warnings in insertion order. The position
// in the returned slice plus one is the ordinal used by RemoveWarning.
func (s *Store) ListWarnings(userID string) ([]models.Warning, error) {
	rows, err := s.db.Query(`SELECT id, user_id, reason FROM warnings WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query warnings: %w", err)
	}
	defer rows.Close()

	var warnings []models.Warning
	for rows.Next() {
		var w models.Warning
		if err := rows.Scan(&w.ID, &w.UserID, &w.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan warning: %w", err)
		}
		warnings = append(warnings, w)
	}
	return warnings, rows.Err()
}

// CountWarnings returns how many warnings the user currently has.
func (s *Store) CountWarnings(userID string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM warnings WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count warnings: %w", err)
	}
	return count, nil
}

// RemoveWarning deletes the warning at the given 1-based ordinal within the
// user's current list and returns it. The ordinal-to-row mapping is
// re-resolved inside the transaction, so two concurrent removals on a
// shrinking list each see the list as it exists at call time. Returns
// ErrWarningNotFound when the ordinal is out of range.
func (s *Store) RemoveWarning(userID string, ordinal int) (models.Warning, error) {
	if ordinal < 1 {
		return models.Warning{}, ErrWarningNotFound
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Warning{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT id, user_id, reason FROM warnings WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return models.Warning{}, fmt.Errorf("failed to query warnings: %w", err)
	}

	var warnings []models.Warning
	for rows.Next() {
		var w models.Warning
		if err := rows.Scan(&w.ID, &w.UserID, &w.Reason); err != nil {
			rows.Close()
			return models.Warning{}, fmt.Errorf("failed to scan warning: %w", err)
		}
		warnings = append(warnings, w)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return models.Warning{}, err
	}
	rows.Close()

	if ordinal > len(warnings) {
		return models.Warning{}, ErrWarningNotFound
	}

	removed := warnings[ordinal-1]
	if _, err := tx.Exec(`DELETE FROM warnings WHERE id = ?`, removed.ID); err != nil {
		return models.Warning{}, fmt.Errorf("failed to delete warning: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Warning{}, fmt.Errorf("failed to commit removal: %w", err)
	}
	return removed, nil
}
