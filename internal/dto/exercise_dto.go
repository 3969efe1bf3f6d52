package dto

// MathProblemDTO is one arithmetic problem as served to the client.
type MathProblemDTO struct {
	ID         uint   `json:"id"`
	Expression string `json:"expression"`
	Answer     int    `json:"answer"`
}

type ArithmeticResponse struct {
	Problems         []MathProblemDTO `json:"problems"`
	TimeLimitSeconds int              `json:"time_limit_seconds"`
}

type ReadingPassageDTO struct {
	ID        uint   `json:"id"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count,omitempty"`
}

// StroopItem is derived per request and never stored. Word is a color name in
// upper case; DisplayColor is the hex of a different color; CorrectAnswer is
// the name of the color actually shown. Word and CorrectAnswer always differ.
type StroopItem struct {
	ID            int    `json:"id"` // 1-based position in the sequence
	Word          string `json:"word"`
	DisplayColor  string `json:"display_color"`
	CorrectAnswer string `json:"correct_answer"`
}

type StroopResponse struct {
	Items            []StroopItem `json:"items"`
	TimeLimitSeconds int          `json:"time_limit_seconds"`
}

type MemoryWordsResponse struct {
	Words               []string `json:"words"`
	MemorizeTimeSeconds int      `json:"memorize_time_seconds"`
	RecallTimeSeconds   int      `json:"recall_time_seconds"`
}

type ExerciseTypeDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DurationSeconds int    `json:"duration_seconds"`
	Instructions    string `json:"instructions,omitempty"`
}
