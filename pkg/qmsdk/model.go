package qmsdk

// Wire models for the Quiz Master API. Field names follow the platform's
// snake_case JSON.

// User is the profile record carried in the session and returned by the
// auth endpoints.
type User struct {
	ID            int    `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Qualification string `json:"qualification,omitempty"`
	Role          string `json:"role,omitempty"`
	IsActive      bool   `json:"is_active,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	LastLogin     string `json:"last_login,omitempty"`
}

type Subject struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Code          string    `json:"code,omitempty"`
	Description   string    `json:"description,omitempty"`
	Color         string    `json:"color,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	IsActive      bool      `json:"is_active"`
	ChaptersCount int       `json:"chapters_count,omitempty"`
	QuizzesCount  int       `json:"quizzes_count,omitempty"`
	Chapters      []Chapter `json:"chapters,omitempty"`
}

type Chapter struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	ChapterNumber int    `json:"chapter_number"`
	Description   string `json:"description,omitempty"`
	SubjectID     int    `json:"subject_id"`
	SubjectName   string `json:"subject_name,omitempty"`
	SubjectSlug   string `json:"subject_slug,omitempty"`
	QuizzesCount  int    `json:"quizzes_count,omitempty"`
	IsActive      bool   `json:"is_active"`
}

type Quiz struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description,omitempty"`
	ChapterID       int     `json:"chapter_id"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	PassingScore    float64 `json:"passing_score,omitempty"`
	MaxAttempts     int     `json:"max_attempts,omitempty"`
	IsActive        bool    `json:"is_active"`
	UserAttempts    int     `json:"user_attempts,omitempty"`
	BestScore       float64 `json:"best_score,omitempty"`
	CanAttempt      bool    `json:"can_attempt,omitempty"`
}

// Question as presented during a quiz attempt: options without the correct
// answer. Admin endpoints additionally carry CorrectAnswer and Points.
type Question struct {
	ID            int      `json:"id"`
	QuizID        int      `json:"quiz_id,omitempty"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Points        int      `json:"points,omitempty"`
	Order         int      `json:"order,omitempty"`
	IsActive      bool     `json:"is_active,omitempty"`
}

type Score struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	QuizID        int     `json:"quiz_id"`
	QuizTitle     string  `json:"quiz_title,omitempty"`
	Score         float64 `json:"score"`
	MaxScore      float64 `json:"max_score"`
	Percentage    float64 `json:"percentage"`
	Passed        bool    `json:"passed"`
	AttemptNumber int     `json:"attempt_number,omitempty"`
	StartedAt     string  `json:"started_at,omitempty"`
	CompletedAt   string  `json:"completed_at,omitempty"`
	TimeTaken     int     `json:"time_taken,omitempty"`
}

type LeaderboardEntry struct {
	Rank           int     `json:"rank"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	TotalAttempts  int     `json:"total_attempts"`
	AverageScore   float64 `json:"average_score"`
	PassedAttempts int     `json:"passed_attempts"`
	PassRate       float64 `json:"pass_rate"`
}

// QuizAttempt is the server's answer to starting a quiz.
type QuizAttempt struct {
	Quiz            Quiz       `json:"quiz"`
	Questions       []Question `json:"questions"`
	DurationMinutes int        `json:"duration_minutes"`
	StartedAt       string     `json:"started_at"`
	SessionKey      string     `json:"session_key,omitempty"`
}

// QuizResult is the outcome of a submitted attempt.
type QuizResult struct {
	Message string `json:"message,omitempty"`
	Score   Score  `json:"score"`
}
