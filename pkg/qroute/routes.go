// Package qroute models the client's view surface: the route table, the
// per-route access metadata, and the navigation guard evaluated before every
// view transition.
package qroute

import "strings"

// Role gates routes and UI areas.
type Role string

const (
	RoleNone  Role = ""
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Meta is the access metadata a route declares. Public is informational;
// the guard special-cases the home/login/register routes by identity.
type Meta struct {
	Public        bool
	RequiresAuth  bool
	RequiresGuest bool
	Role          Role
}

// Route is one addressable view.
type Route struct {
	Name string
	Path string
	Meta Meta
}

// IsAuthSurface reports whether the route is reachable without
// authentication (home, login, register).
func (r Route) IsAuthSurface() bool {
	return r.Name == "Home" || r.Name == "Login" || r.Name == "Register" || r.Path == "/"
}

// Routes returns the full route table of the client.
func Routes() []Route {
	return []Route{
		{Name: "Home", Path: "/", Meta: Meta{Public: true}},

		{Name: "Login", Path: "/login", Meta: Meta{RequiresGuest: true}},
		{Name: "Register", Path: "/register", Meta: Meta{RequiresGuest: true}},

		{Name: "Dashboard", Path: "/dashboard", Meta: Meta{RequiresAuth: true, Role: RoleUser}},
		{Name: "Subjects", Path: "/subjects", Meta: Meta{RequiresAuth: true, Role: RoleUser}},
		{Name: "SubjectChapters", Path: "/subjects/:subjectSlug/chapters", Meta: Meta{RequiresAuth: true, Role: RoleUser}},
		{Name: "ChapterQuizzes", Path: "/subjects/:subjectSlug/chapters/:chapterSlug/quizzes", Meta: Meta{RequiresAuth: true, Role: RoleUser}},
		{Name: "QuizInfo", Path: "/quiz/:quizSlug/info", Meta: Meta{RequiresAuth: true, Role: RoleUser}},
		{Name: "TakeQuiz", Path: "/quiz/:quizSlug/take", Meta: Meta{RequiresAuth: true, Role: RoleUser}},
		{Name: "QuizResult", Path: "/quiz/:quizSlug/result", Meta: Meta{RequiresAuth: true, Role: RoleUser}},
		{Name: "Scores", Path: "/scores", Meta: Meta{RequiresAuth: true, Role: RoleUser}},
		{Name: "ScoreDetail", Path: "/scores/:scoreId", Meta: Meta{RequiresAuth: true, Role: RoleUser}},
		{Name: "Leaderboard", Path: "/leaderboard", Meta: Meta{RequiresAuth: true, Role: RoleUser}},
		{Name: "Profile", Path: "/profile", Meta: Meta{RequiresAuth: true}},

		{Name: "AdminDashboard", Path: "/admin/dashboard", Meta: Meta{RequiresAuth: true, Role: RoleAdmin}},
		{Name: "AdminSubjects", Path: "/admin/subjects", Meta: Meta{RequiresAuth: true, Role: RoleAdmin}},
		{Name: "AdminChapters", Path: "/admin/subjects/:subjectId/chapters", Meta: Meta{RequiresAuth: true, Role: RoleAdmin}},
		{Name: "AdminQuizzes", Path: "/admin/quizzes", Meta: Meta{RequiresAuth: true, Role: RoleAdmin}},
		{Name: "AdminQuestions", Path: "/admin/quizzes/:quizId/questions", Meta: Meta{RequiresAuth: true, Role: RoleAdmin}},
		{Name: "AdminUsers", Path: "/admin/users", Meta: Meta{RequiresAuth: true, Role: RoleAdmin}},
		{Name: "AdminProfile", Path: "/admin/profile", Meta: Meta{RequiresAuth: true, Role: RoleAdmin}},

		{Name: "Search", Path: "/search", Meta: Meta{RequiresAuth: true}},
		{Name: "NotFound", Path: "/404", Meta: Meta{}},
	}
}

// Match resolves a concrete path against the route table. Pattern segments
// beginning with ':' match any non-empty segment. Unknown paths resolve to
// the NotFound route.
func Match(path string) Route {
	var notFound Route
	for _, r := range Routes() {
		if r.Name == "NotFound" {
			notFound = r
		}
		if matchPath(r.Path, path) {
			return r
		}
	}
	return notFound
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	ss := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(ss) {
		return false
	}
	for i, p := range ps {
		if strings.HasPrefix(p, ":") {
			if ss[i] == "" {
				return false
			}
			continue
		}
		if p != ss[i] {
			return false
		}
	}
	return true
}
