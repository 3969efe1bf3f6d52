package dto

import "time"

// ResultCreateDTO is the request body for recording an exercise result.
// Numeric fields are pointers so that a legitimate zero (score 0, instant
// completion) still passes the required binding.
type ResultCreateDTO struct {
	SessionID      *uint          `json:"session_id"`
	ExerciseType   string         `json:"exercise_type" binding:"required"`
	Score          *int           `json:"score" binding:"required"`
	TimeSeconds    *float64       `json:"time_seconds" binding:"required,gte=0"`
	CorrectAnswers *int           `json:"correct_answers" binding:"required,gte=0"`
	TotalQuestions *int           `json:"total_questions" binding:"required,gte=0"`
	Details        map[string]any `json:"details"`
}

// ResultDTO is a stored result as returned to the client.
type ResultDTO struct {
	ID             uint      `json:"id"`
	SessionID      uint      `json:"session_id"`
	ExerciseType   string    `json:"exercise_type"`
	StartedAt      time.Time `json:"started_at"`
	Score          int       `json:"score"`
	TimeSeconds    float64   `json:"time_seconds"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
}

// SessionDTO carries a session together with its results. TotalScore is the
// sum of the result scores, recomputed on every read.
type SessionDTO struct {
	ID         uint        `json:"id"`
	StartedAt  time.Time   `json:"started_at"`
	TotalScore int         `json:"total_score"`
	Results    []ResultDTO `json:"results"`
}
