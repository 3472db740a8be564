package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openvote/election-backend/internal/entity"
	"github.com/openvote/election-backend/internal/repo"
)

func (s *Storage) SaveQuestion(ctx context.Context, electionID int64, question, description string) (int64, error) {
	const op = "storage.postgres.SaveQuestion"

	query := `INSERT INTO questions (election_id, question, description) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, electionID, question, description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) Question(ctx context.Context, id int64) (entity.Question, error) {
	const op = "storage.postgres.Question"

	query := `SELECT id, question, description, election_id FROM questions WHERE id = $1`

	var q entity.Question
	err := s.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Question, &q.Description, &q.ElectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Question{}, fmt.Errorf("%s: %w", op, repo.ErrQuestionNotFound)
		}
		return entity.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

func (s *Storage) QuestionsByElection(ctx context.Context, electionID int64) ([]entity.Question, error) {
	const op = "storage.postgres.QuestionsByElection"

	query := `SELECT id, question, description, election_id FROM questions WHERE election_id = $1 ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var questions []entity.Question
	for rows.Next() {
		var q entity.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Description, &q.ElectionID); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return questions, nil
}

func (s *Storage) CountQuestions(ctx context.Context, electionID int64) (int64, error) {
	const op = "storage.postgres.CountQuestions"

	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions WHERE election_id = $1`, electionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

func (s *Storage) UpdateQuestion(ctx context.Context, id int64, question, description string) error {
	const op = "storage.postgres.UpdateQuestion"

	res, err := s.db.ExecContext(ctx,
		`UPDATE questions SET question = $1, description = $2 WHERE id = $3`, question, description, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrQuestionNotFound)
	}
	return nil
}

// DeleteQuestion refuses to delete the election's last remaining question.
// The count and the delete run inside one transaction holding the election
// row lock, so two concurrent deletes cannot both see count > 1.
func (s *Storage) DeleteQuestion(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteQuestion"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var electionID int64
	err = tx.QueryRowContext(ctx, `SELECT election_id FROM questions WHERE id = $1`, id).Scan(&electionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, repo.ErrQuestionNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, `SELECT id FROM elections WHERE id = $1 FOR UPDATE`, electionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var count int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions WHERE election_id = $1`, electionID).Scan(&count); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count <= 1 {
		return fmt.Errorf("%s: %w", op, repo.ErrLastQuestion)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveOption(ctx context.Context, questionID int64, option string) (int64, error) {
	const op = "storage.postgres.SaveOption"

	query := `INSERT INTO options (question_id, option) VALUES ($1, $2) RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, questionID, option).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) Option(ctx context.Context, id int64) (entity.Option, error) {
	const op = "storage.postgres.Option"

	query := `SELECT id, option, question_id FROM options WHERE id = $1`

	var o entity.Option
	err := s.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Option, &o.QuestionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Option{}, fmt.Errorf("%s: %w", op, repo.ErrOptionNotFound)
		}
		return entity.Option{}, fmt.Errorf("%s: %w", op, err)
	}

	return o, nil
}

func (s *Storage) OptionsByQuestion(ctx context.Context, questionID int64) ([]entity.Option, error) {
	const op = "storage.postgres.OptionsByQuestion"

	query := `SELECT id, option, question_id FROM options WHERE question_id = $1 ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var options []entity.Option
	for rows.Next() {
		var o entity.Option
		if err := rows.Scan(&o.ID, &o.Option, &o.QuestionID); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		options = append(options, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return options, nil
}

func (s *Storage) UpdateOption(ctx context.Context, id int64, option string) error {
	const op = "storage.postgres.UpdateOption"

	res, err := s.db.ExecContext(ctx, `UPDATE options SET option = $1 WHERE id = $2`, option, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrOptionNotFound)
	}
	return nil
}

// DeleteOption has no last-option floor: deleting below two options is
// allowed here and surfaces later as a launch failure.
func (s *Storage) DeleteOption(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteOption"

	res, err := s.db.ExecContext(ctx, `DELETE FROM options WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrOptionNotFound)
	}

	return nil
}

func (s *Storage) SaveVoter(ctx context.Context, electionID int64, voterID string, passHash []byte) (int64, error) {
	const op = "storage.postgres.SaveVoter"

	query := `INSERT INTO voters (election_id, voterid, pass_hash) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, electionID, voterID, passHash).Scan(&id)
	if err != nil {
		if isUnique(err) {
			return 0, fmt.Errorf("%s: %w", op, repo.ErrVoterExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) Voter(ctx context.Context, id int64) (entity.Voter, error) {
	const op = "storage.postgres.Voter"

	query := `SELECT id, voterid, pass_hash, voted, election_id FROM voters WHERE id = $1`

	var v entity.Voter
	err := s.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.VoterID, &v.PassHash, &v.Voted, &v.ElectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Voter{}, fmt.Errorf("%s: %w", op, repo.ErrVoterNotFound)
		}
		return entity.Voter{}, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

// VoterInElection resolves voter credentials scoped to one election. A voterid
// is meaningless outside the election it was registered for.
func (s *Storage) VoterInElection(ctx context.Context, electionID int64, voterID string) (entity.Voter, error) {
	const op = "storage.postgres.VoterInElection"

	query := `SELECT id, voterid, pass_hash, voted, election_id FROM voters WHERE election_id = $1 AND voterid = $2`

	var v entity.Voter
	err := s.db.QueryRowContext(ctx, query, electionID, voterID).
		Scan(&v.ID, &v.VoterID, &v.PassHash, &v.Voted, &v.ElectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Voter{}, fmt.Errorf("%s: %w", op, repo.ErrVoterNotFound)
		}
		return entity.Voter{}, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

func (s *Storage) VotersByElection(ctx context.Context, electionID int64) ([]entity.Voter, error) {
	const op = "storage.postgres.VotersByElection"

	query := `SELECT id, voterid, pass_hash, voted, election_id FROM voters WHERE election_id = $1 ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var voters []entity.Voter
	for rows.Next() {
		var v entity.Voter
		if err := rows.Scan(&v.ID, &v.VoterID, &v.PassHash, &v.Voted, &v.ElectionID); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		voters = append(voters, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return voters, nil
}

func (s *Storage) CountVoters(ctx context.Context, electionID int64) (int64, error) {
	const op = "storage.postgres.CountVoters"

	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM voters WHERE election_id = $1`, electionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeleteVoter refuses when the voter has already voted or is the election's
// last remaining voter. Guard and delete share a transaction.
func (s *Storage) DeleteVoter(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteVoter"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var electionID int64
	var voted bool
	err = tx.QueryRowContext(ctx, `SELECT election_id, voted FROM voters WHERE id = $1`, id).
		Scan(&electionID, &voted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, repo.ErrVoterNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if voted {
		return fmt.Errorf("%s: %w", op, repo.ErrVoterHasVoted)
	}

	if _, err := tx.ExecContext(ctx, `SELECT id FROM elections WHERE id = $1 FOR UPDATE`, electionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var count int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM voters WHERE election_id = $1`, electionID).Scan(&count); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count <= 1 {
		return fmt.Errorf("%s: %w", op, repo.ErrLastVoter)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM voters WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateVoterPassword(ctx context.Context, id int64, passHash []byte) error {
	const op = "storage.postgres.UpdateVoterPassword"

	res, err := s.db.ExecContext(ctx, `UPDATE voters SET pass_hash = $1 WHERE id = $2`, passHash, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrVoterNotFound)
	}
	return nil
}

// SaveAnswers records a whole ballot in one transaction: one answer row per
// question, then the voter's voted flag. The voter row lock makes a second
// concurrent submission wait and then fail the voted check.
func (s *Storage) SaveAnswers(ctx context.Context, voterID, electionID int64, selections []entity.Selection) error {
	const op = "storage.postgres.SaveAnswers"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var voted bool
	err = tx.QueryRowContext(ctx, `SELECT voted FROM voters WHERE id = $1 FOR UPDATE`, voterID).Scan(&voted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, repo.ErrVoterNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if voted {
		return fmt.Errorf("%s: %w", op, repo.ErrAlreadyVoted)
	}

	for _, sel := range selections {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO answers (voter_id, election_id, question_id, option_id) VALUES ($1, $2, $3, $4)`,
			voterID, electionID, sel.QuestionID, sel.OptionID)
		if err != nil {
			if isUnique(err) {
				return fmt.Errorf("%s: %w", op, repo.ErrAlreadyVoted)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE voters SET voted = TRUE WHERE id = $1`, voterID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AnswerCounts aggregates recorded answers per question and option.
func (s *Storage) AnswerCounts(ctx context.Context, electionID int64) (map[int64]map[int64]int64, error) {
	const op = "storage.postgres.AnswerCounts"

	query := `
		SELECT question_id, option_id, COUNT(*)
		FROM answers
		WHERE election_id = $1
		GROUP BY question_id, option_id`

	rows, err := s.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	counts := make(map[int64]map[int64]int64)
	for rows.Next() {
		var questionID, optionID, count int64
		if err := rows.Scan(&questionID, &optionID, &count); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if counts[questionID] == nil {
			counts[questionID] = make(map[int64]int64)
		}
		counts[questionID][optionID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return counts, nil
}
