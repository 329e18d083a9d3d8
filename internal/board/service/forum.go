package service

import (
	"context"
	"errors"

	"github.com/askboard/askboard/internal/board/domain"
	"github.com/askboard/askboard/internal/board/store"
	"github.com/askboard/askboard/pkg/idx"
)

// ForumService is the thin CRUD layer over questions and answers. Each
// call is a single round trip to storage; there is nothing to coordinate.
type ForumService struct {
	Store store.Store
}

func (s *ForumService) AskQuestion(ctx context.Context, content string) (domain.Question, error) {
	if content == "" {
		return domain.Question{}, ErrInvalidRequest
	}
	q := domain.Question{
		ID:      idx.New().String(),
		Content: content,
	}
	if err := s.Store.Questions().CreateQuestion(ctx, q); err != nil {
		return domain.Question{}, err
	}
	return q, nil
}

func (s *ForumService) GetQuestion(ctx context.Context, id string) (domain.Question, error) {
	q, err := s.Store.Questions().GetQuestionByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Question{}, ErrQuestionNotFound
	}
	return q, err
}

func (s *ForumService) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return s.Store.Questions().ListQuestions(ctx)
}

func (s *ForumService) EditQuestion(ctx context.Context, id, content string) error {
	if content == "" {
		return ErrInvalidRequest
	}
	err := s.Store.Questions().UpdateQuestionContent(ctx, id, content)
	if errors.Is(err, store.ErrNotFound) {
		return ErrQuestionNotFound
	}
	return err
}

// DeleteQuestion removes a question and, via the schema, its answers.
func (s *ForumService) DeleteQuestion(ctx context.Context, id string) error {
	err := s.Store.Questions().DeleteQuestion(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrQuestionNotFound
	}
	return err
}

func (s *ForumService) PostAnswer(ctx context.Context, questionID, content string) (domain.Answer, error) {
	if content == "" {
		return domain.Answer{}, ErrInvalidRequest
	}

	// Resolve the question first for a clean not-found instead of a
	// foreign key violation.
	if _, err := s.GetQuestion(ctx, questionID); err != nil {
		return domain.Answer{}, err
	}

	a := domain.Answer{
		ID:         idx.New().String(),
		QuestionID: questionID,
		Content:    content,
	}
	if err := s.Store.Answers().CreateAnswer(ctx, a); err != nil {
		return domain.Answer{}, err
	}
	return a, nil
}

func (s *ForumService) ListAnswers(ctx context.Context, questionID string) ([]domain.Answer, error) {
	return s.Store.Answers().ListAnswersByQuestion(ctx, questionID)
}

func (s *ForumService) EditAnswer(ctx context.Context, id, content string) error {
	if content == "" {
		return ErrInvalidRequest
	}
	err := s.Store.Answers().UpdateAnswerContent(ctx, id, content)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAnswerNotFound
	}
	return err
}

func (s *ForumService) DeleteAnswer(ctx context.Context, id string) error {
	err := s.Store.Answers().DeleteAnswer(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAnswerNotFound
	}
	return err
}
