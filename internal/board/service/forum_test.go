package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForumQuestions(t *testing.T) {
	ctx := context.Background()
	svc := &ForumService{Store: newTestStore(t)}

	t.Run("ask and fetch", func(t *testing.T) {
		q, err := svc.AskQuestion(ctx, "What is a pointer?")
		require.NoError(t, err)
		require.NotEmpty(t, q.ID)

		got, err := svc.GetQuestion(ctx, q.ID)
		require.NoError(t, err)
		require.Equal(t, q.Content, got.Content)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := svc.AskQuestion(ctx, "")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("edit", func(t *testing.T) {
		q, err := svc.AskQuestion(ctx, "draft")
		require.NoError(t, err)

		require.NoError(t, svc.EditQuestion(ctx, q.ID, "What is a slice?"))

		got, err := svc.GetQuestion(ctx, q.ID)
		require.NoError(t, err)
		require.Equal(t, "What is a slice?", got.Content)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetQuestion(ctx, "missing")
		require.ErrorIs(t, err, ErrQuestionNotFound)

		require.ErrorIs(t, svc.EditQuestion(ctx, "missing", "x"), ErrQuestionNotFound)
		require.ErrorIs(t, svc.DeleteQuestion(ctx, "missing"), ErrQuestionNotFound)
	})
}

func TestForumAnswers(t *testing.T) {
	ctx := context.Background()
	svc := &ForumService{Store: newTestStore(t)}

	q, err := svc.AskQuestion(ctx, "What is a channel?")
	require.NoError(t, err)

	t.Run("post and list", func(t *testing.T) {
		a, err := svc.PostAnswer(ctx, q.ID, "A typed conduit.")
		require.NoError(t, err)
		require.Equal(t, q.ID, a.QuestionID)

		answers, err := svc.ListAnswers(ctx, q.ID)
		require.NoError(t, err)
		require.Len(t, answers, 1)
	})

	t.Run("answer needs an existing question", func(t *testing.T) {
		_, err := svc.PostAnswer(ctx, "missing", "orphan")
		require.ErrorIs(t, err, ErrQuestionNotFound)
	})

	t.Run("edit and delete", func(t *testing.T) {
		a, err := svc.PostAnswer(ctx, q.ID, "first take")
		require.NoError(t, err)

		require.NoError(t, svc.EditAnswer(ctx, a.ID, "better take"))
		require.NoError(t, svc.DeleteAnswer(ctx, a.ID))
		require.ErrorIs(t, svc.EditAnswer(ctx, a.ID, "gone"), ErrAnswerNotFound)
	})

	t.Run("deleting the question cascades to answers", func(t *testing.T) {
		q2, err := svc.AskQuestion(ctx, "doomed")
		require.NoError(t, err)
		_, err = svc.PostAnswer(ctx, q2.ID, "also doomed")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteQuestion(ctx, q2.ID))

		answers, err := svc.ListAnswers(ctx, q2.ID)
		require.NoError(t, err)
		require.Empty(t, answers)
	})
}
