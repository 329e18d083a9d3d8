package sqlite

import (
	"context"

	"github.com/askboard/askboard/internal/board/domain"
)

type answersRepo struct {
	db dbtx
}

func (r *answersRepo) CreateAnswer(ctx context.Context, a domain.Answer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (id, question_id, content) VALUES (?, ?, ?)`,
		a.ID, a.QuestionID, a.Content)
	return mapConstraint(err)
}

func (r *answersRepo) GetAnswerByID(ctx context.Context, id string) (domain.Answer, error) {
	var a domain.Answer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, question_id, content, created_at, updated_at FROM answers WHERE id = ?`,
		id).Scan(&a.ID, &a.QuestionID, &a.Content, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Answer{}, mapNotFound(err)
	}
	return a, nil
}

func (r *answersRepo) ListAnswersByQuestion(ctx context.Context, questionID string) ([]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question_id, content, created_at, updated_at
		 FROM answers WHERE question_id = ? ORDER BY id`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Content, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *answersRepo) UpdateAnswerContent(ctx context.Context, id, content string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE answers SET content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		content, id)
	return affectedOrNotFound(res, err)
}

func (r *answersRepo) DeleteAnswer(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM answers WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}
