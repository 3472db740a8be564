package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openvote/election-backend/internal/entity"
	"github.com/openvote/election-backend/internal/repo"
)

const electionColumns = `id, election_name, url_string, running, ended, admin_id, created_at, updated_at`

func scanElection(row *sql.Row) (entity.Election, error) {
	var e entity.Election
	err := row.Scan(&e.ID, &e.ElectionName, &e.URLString, &e.Running, &e.Ended,
		&e.AdminID, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (s *Storage) SaveElection(ctx context.Context, name, urlString string, adminID int64) (int64, error) {
	const op = "storage.postgres.SaveElection"

	query := `INSERT INTO elections (election_name, url_string, admin_id) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, name, urlString, adminID).Scan(&id)
	if err != nil {
		if isUnique(err) {
			return 0, fmt.Errorf("%s: %w", op, repo.ErrURLTaken)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) Election(ctx context.Context, id int64) (entity.Election, error) {
	const op = "storage.postgres.Election"

	query := `SELECT ` + electionColumns + ` FROM elections WHERE id = $1`

	election, err := scanElection(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Election{}, fmt.Errorf("%s: %w", op, repo.ErrElectionNotFound)
		}
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	return election, nil
}

func (s *Storage) ElectionByURL(ctx context.Context, urlString string) (entity.Election, error) {
	const op = "storage.postgres.ElectionByURL"

	query := `SELECT ` + electionColumns + ` FROM elections WHERE url_string = $1`

	election, err := scanElection(s.db.QueryRowContext(ctx, query, urlString))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Election{}, fmt.Errorf("%s: %w", op, repo.ErrElectionNotFound)
		}
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	return election, nil
}

func (s *Storage) ElectionsByAdmin(ctx context.Context, adminID int64) ([]entity.Election, error) {
	const op = "storage.postgres.ElectionsByAdmin"

	query := `SELECT ` + electionColumns + ` FROM elections WHERE admin_id = $1 ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var elections []entity.Election
	for rows.Next() {
		var e entity.Election
		if err := rows.Scan(&e.ID, &e.ElectionName, &e.URLString, &e.Running, &e.Ended,
			&e.AdminID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		elections = append(elections, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return elections, nil
}

// LaunchElection performs the draft -> running transition. The phase check,
// the ballot-structure preconditions and the write happen inside one
// transaction so that two concurrent launches cannot both pass the checks.
func (s *Storage) LaunchElection(ctx context.Context, id int64) (entity.Election, error) {
	const op = "storage.postgres.LaunchElection"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var election entity.Election
	err = tx.QueryRowContext(ctx,
		`SELECT `+electionColumns+` FROM elections WHERE id = $1 FOR UPDATE`, id).
		Scan(&election.ID, &election.ElectionName, &election.URLString, &election.Running,
			&election.Ended, &election.AdminID, &election.CreatedAt, &election.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Election{}, fmt.Errorf("%s: %w", op, repo.ErrElectionNotFound)
		}
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	if election.Ended {
		return entity.Election{}, fmt.Errorf("%s: %w", op, repo.ErrElectionEnded)
	}

	var questionCount int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions WHERE election_id = $1`, id).Scan(&questionCount); err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}
	if questionCount < 1 {
		return entity.Election{}, fmt.Errorf("%s: %w", op, repo.ErrNoQuestions)
	}

	// First question with fewer than two options, if any.
	var shortQuestionID int64
	err = tx.QueryRowContext(ctx, `
		SELECT q.id
		FROM questions q
		LEFT JOIN options o ON o.question_id = q.id
		WHERE q.election_id = $1
		GROUP BY q.id
		HAVING COUNT(o.id) < 2
		ORDER BY q.id ASC
		LIMIT 1`, id).Scan(&shortQuestionID)
	if err == nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, &repo.FewOptionsError{QuestionID: shortQuestionID})
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	var voterCount int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM voters WHERE election_id = $1`, id).Scan(&voterCount); err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}
	if voterCount < 1 {
		return entity.Election{}, fmt.Errorf("%s: %w", op, repo.ErrNoVoters)
	}

	err = tx.QueryRowContext(ctx,
		`UPDATE elections SET running = TRUE, updated_at = NOW() WHERE id = $1 RETURNING `+electionColumns, id).
		Scan(&election.ID, &election.ElectionName, &election.URLString, &election.Running,
			&election.Ended, &election.AdminID, &election.CreatedAt, &election.UpdatedAt)
	if err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	return election, nil
}

// EndElection performs the running -> ended transition. Terminal: there is no
// way back to running or draft.
func (s *Storage) EndElection(ctx context.Context, id int64) (entity.Election, error) {
	const op = "storage.postgres.EndElection"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var running, ended bool
	err = tx.QueryRowContext(ctx,
		`SELECT running, ended FROM elections WHERE id = $1 FOR UPDATE`, id).Scan(&running, &ended)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Election{}, fmt.Errorf("%s: %w", op, repo.ErrElectionNotFound)
		}
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	if ended {
		return entity.Election{}, fmt.Errorf("%s: %w", op, repo.ErrElectionEnded)
	}
	if !running {
		return entity.Election{}, fmt.Errorf("%s: %w", op, repo.ErrElectionNotRunning)
	}

	var election entity.Election
	err = tx.QueryRowContext(ctx,
		`UPDATE elections SET running = FALSE, ended = TRUE, updated_at = NOW() WHERE id = $1 RETURNING `+electionColumns, id).
		Scan(&election.ID, &election.ElectionName, &election.URLString, &election.Running,
			&election.Ended, &election.AdminID, &election.CreatedAt, &election.UpdatedAt)
	if err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	return election, nil
}
