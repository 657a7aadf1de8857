package qmsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// User-area endpoints. Everything here rides the pipeline, so each call
// carries the bearer header, participates in the busy gauge, and is covered
// by the 401-refresh-retry policy.

// Subjects lists the active subjects with their chapters.
func (s *SDK) Subjects(ctx context.Context) ([]Subject, error) {
	var out struct {
		Subjects []Subject `json:"subjects"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodGet, Path: "/user/subjects"}, &out)
	return out.Subjects, err
}

// SubjectChapters returns a subject and its chapters by subject slug.
func (s *SDK) SubjectChapters(ctx context.Context, subjectSlug string) (*Subject, []Chapter, error) {
	var out struct {
		Subject  *Subject  `json:"subject"`
		Chapters []Chapter `json:"chapters"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/user/subjects/%s/chapters", url.PathEscape(subjectSlug)),
	}, &out)
	return out.Subject, out.Chapters, err
}

// ChapterQuizzes returns the quizzes of a chapter, annotated with the
// user's attempts.
func (s *SDK) ChapterQuizzes(ctx context.Context, subjectSlug, chapterSlug string) ([]Quiz, error) {
	var out struct {
		Quizzes []Quiz `json:"quizzes"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodGet,
		Path: fmt.Sprintf("/user/subjects/%s/chapters/%s/quizzes",
			url.PathEscape(subjectSlug), url.PathEscape(chapterSlug)),
	}, &out)
	return out.Quizzes, err
}

// QuizInfo fetches quiz metadata by slug before an attempt.
func (s *SDK) QuizInfo(ctx context.Context, quizSlug string) (*Quiz, error) {
	var out struct {
		Quiz *Quiz `json:"quiz"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/user/quizzes/%s/info", url.PathEscape(quizSlug)),
	}, &out)
	return out.Quiz, err
}

// StartQuiz opens an attempt and returns the questions to answer.
func (s *SDK) StartQuiz(ctx context.Context, quizID int) (*QuizAttempt, error) {
	var out QuizAttempt
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/quiz/%d/start", quizID),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitQuiz sends the answers keyed by question ID and returns the scored
// result.
func (s *SDK) SubmitQuiz(ctx context.Context, quizID int, answers map[string]string) (*QuizResult, error) {
	var out QuizResult
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/quiz/%d/submit", quizID),
		Body:   map[string]any{"answers": answers},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ScorePage is one page of the user's score history.
type ScorePage struct {
	Scores []Score `json:"scores"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Pages  int     `json:"pages"`
}

// Scores pages through the user's attempts, newest first.
func (s *SDK) Scores(ctx context.Context, page, perPage int) (*ScorePage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	var out ScorePage
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodGet, Path: "/user/scores", Query: q}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ScoreDetail returns one attempt with per-question breakdown.
func (s *SDK) ScoreDetail(ctx context.Context, scoreID int) (*Score, error) {
	var out struct {
		Score *Score `json:"score"`
	}
	err := s.pipeline.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/user/scores/%d", scoreID),
	}, &out)
	return out.Score, err
}

// Leaderboard returns the global top performers.
func (s *SDK) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	var out struct {
		Leaderboard []LeaderboardEntry `json:"leaderboard"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodGet, Path: "/user/leaderboard"}, &out)
	return out.Leaderboard, err
}

// DashboardStats is the user dashboard summary.
type DashboardStats struct {
	TotalAttempts  int     `json:"total_attempts"`
	AverageScore   float64 `json:"average_score"`
	PassedAttempts int     `json:"passed_attempts"`
	SubjectsCount  int     `json:"subjects_count"`
	QuizzesCount   int     `json:"quizzes_count"`
}

func (s *SDK) UserStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodGet, Path: "/user/dashboard/stats"}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
