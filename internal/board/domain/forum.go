package domain

import "time"

type Question struct {
	ID        string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Answer struct {
	ID         string
	QuestionID string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
