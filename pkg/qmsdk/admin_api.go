package qmsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Admin-area endpoints. The route guard keeps non-admin users away from the
// admin views; the server enforces the same rule with 403s, which the
// pipeline surfaces as "Access denied".

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalUsers    int `json:"total_users"`
	TotalSubjects int `json:"total_subjects"`
	TotalChapters int `json:"total_chapters"`
	TotalQuizzes  int `json:"total_quizzes"`
	TotalAttempts int `json:"total_attempts"`
	ActiveUsers   int `json:"active_users"`
}

func (s *SDK) AdminStats(ctx context.Context) (*AdminStats, error) {
	var out AdminStats
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodGet, Path: "/admin/dashboard/stats"}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUsers lists registered users.
func (s *SDK) AdminUsers(ctx context.Context) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodGet, Path: "/admin/users"}, &out)
	return out.Users, err
}

// AdminToggleUserStatus flips a user between active and blocked.
func (s *SDK) AdminToggleUserStatus(ctx context.Context, userID int) (*User, error) {
	var out struct {
		Message string `json:"message"`
		User    *User  `json:"user"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/users/%d/toggle-status", userID),
	}, &out)
	return out.User, err
}

func (s *SDK) AdminDeleteUser(ctx context.Context, userID int) error {
	return s.pipeline.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/admin/users/%d", userID),
	}, nil)
}

// SubjectInput is the create/update payload for subjects.
type SubjectInput struct {
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

func (s *SDK) AdminSubjects(ctx context.Context) ([]Subject, error) {
	var out struct {
		Subjects []Subject `json:"subjects"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodGet, Path: "/admin/subjects"}, &out)
	return out.Subjects, err
}

func (s *SDK) AdminCreateSubject(ctx context.Context, in SubjectInput) (*Subject, error) {
	var out struct {
		Message string   `json:"message"`
		Subject *Subject `json:"subject"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodPost, Path: "/admin/subjects", Body: in}, &out)
	return out.Subject, err
}

func (s *SDK) AdminUpdateSubject(ctx context.Context, subjectID int, in SubjectInput) (*Subject, error) {
	var out struct {
		Message string   `json:"message"`
		Subject *Subject `json:"subject"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/subjects/%d", subjectID),
		Body:   in,
	}, &out)
	return out.Subject, err
}

func (s *SDK) AdminDeleteSubject(ctx context.Context, subjectID int) error {
	return s.pipeline.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/admin/subjects/%d", subjectID),
	}, nil)
}

// ChapterInput is the create/update payload for chapters.
type ChapterInput struct {
	Name          string `json:"name"`
	ChapterNumber int    `json:"chapter_number,omitempty"`
	Description   string `json:"description,omitempty"`
	SubjectID     int    `json:"subject_id"`
}

func (s *SDK) AdminChapters(ctx context.Context, subjectID int) ([]Chapter, error) {
	var out struct {
		Chapters []Chapter `json:"chapters"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/admin/subjects/%d/chapters", subjectID),
	}, &out)
	return out.Chapters, err
}

func (s *SDK) AdminCreateChapter(ctx context.Context, in ChapterInput) (*Chapter, error) {
	var out struct {
		Message string   `json:"message"`
		Chapter *Chapter `json:"chapter"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodPost, Path: "/admin/chapters", Body: in}, &out)
	return out.Chapter, err
}

func (s *SDK) AdminUpdateChapter(ctx context.Context, chapterID int, in ChapterInput) (*Chapter, error) {
	var out struct {
		Message string   `json:"message"`
		Chapter *Chapter `json:"chapter"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/chapters/%d", chapterID),
		Body:   in,
	}, &out)
	return out.Chapter, err
}

func (s *SDK) AdminDeleteChapter(ctx context.Context, chapterID int) error {
	return s.pipeline.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/admin/chapters/%d", chapterID),
	}, nil)
}

// QuizInput is the create/update payload for quizzes.
type QuizInput struct {
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	ChapterID       int     `json:"chapter_id"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	PassingScore    float64 `json:"passing_score,omitempty"`
	MaxAttempts     int     `json:"max_attempts,omitempty"`
}

func (s *SDK) AdminQuizzes(ctx context.Context) ([]Quiz, error) {
	var out struct {
		Quizzes []Quiz `json:"quizzes"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodGet, Path: "/admin/quizzes"}, &out)
	return out.Quizzes, err
}

func (s *SDK) AdminCreateQuiz(ctx context.Context, in QuizInput) (*Quiz, error) {
	var out struct {
		Message string `json:"message"`
		Quiz    *Quiz  `json:"quiz"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodPost, Path: "/admin/quizzes", Body: in}, &out)
	return out.Quiz, err
}

func (s *SDK) AdminUpdateQuiz(ctx context.Context, quizID int, in QuizInput) (*Quiz, error) {
	var out struct {
		Message string `json:"message"`
		Quiz    *Quiz  `json:"quiz"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/quizzes/%d", quizID),
		Body:   in,
	}, &out)
	return out.Quiz, err
}

func (s *SDK) AdminDeleteQuiz(ctx context.Context, quizID int) error {
	return s.pipeline.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/admin/quizzes/%d", quizID),
	}, nil)
}

// QuestionInput is the create/update payload for questions.
type QuestionInput struct {
	QuizID        int      `json:"quiz_id"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Points        int      `json:"points,omitempty"`
	Order         int      `json:"order,omitempty"`
}

func (s *SDK) AdminQuestions(ctx context.Context, quizID int) ([]Question, error) {
	var out struct {
		Questions []Question `json:"questions"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/admin/quizzes/%d/questions", quizID),
	}, &out)
	return out.Questions, err
}

func (s *SDK) AdminCreateQuestion(ctx context.Context, in QuestionInput) (*Question, error) {
	var out struct {
		Message  string    `json:"message"`
		Question *Question `json:"question"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodPost, Path: "/admin/questions", Body: in}, &out)
	return out.Question, err
}

func (s *SDK) AdminUpdateQuestion(ctx context.Context, questionID int, in QuestionInput) (*Question, error) {
	var out struct {
		Message  string    `json:"message"`
		Question *Question `json:"question"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/questions/%d", questionID),
		Body:   in,
	}, &out)
	return out.Question, err
}

func (s *SDK) AdminDeleteQuestion(ctx context.Context, questionID int) error {
	return s.pipeline.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/admin/questions/%d", questionID),
	}, nil)
}

// AdminSearchResults groups matches across entity kinds.
type AdminSearchResults struct {
	Users    []User    `json:"users,omitempty"`
	Subjects []Subject `json:"subjects,omitempty"`
	Quizzes  []Quiz    `json:"quizzes,omitempty"`
}

func (s *SDK) AdminSearch(ctx context.Context, query string) (*AdminSearchResults, error) {
	q := url.Values{}
	q.Set("q", query)
	var out AdminSearchResults
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodGet, Path: "/admin/search", Query: q}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
