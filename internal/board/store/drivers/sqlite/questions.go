package sqlite

import (
	"context"

	"github.com/askboard/askboard/internal/board/domain"
)

type questionsRepo struct {
	db dbtx
}

func (r *questionsRepo) CreateQuestion(ctx context.Context, q domain.Question) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (id, content) VALUES (?, ?)`, q.ID, q.Content)
	return mapConstraint(err)
}

func (r *questionsRepo) GetQuestionByID(ctx context.Context, id string) (domain.Question, error) {
	var q domain.Question
	err := r.db.QueryRowContext(ctx,
		`SELECT id, content, created_at, updated_at FROM questions WHERE id = ?`,
		id).Scan(&q.ID, &q.Content, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return domain.Question{}, mapNotFound(err)
	}
	return q, nil
}

func (r *questionsRepo) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, content, created_at, updated_at FROM questions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Content, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *questionsRepo) UpdateQuestionContent(ctx context.Context, id, content string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE questions SET content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		content, id)
	return affectedOrNotFound(res, err)
}

func (r *questionsRepo) DeleteQuestion(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}
