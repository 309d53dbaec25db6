package http

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/handlers"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/metrics"
	httpmw "github.com/muteeurrehman28/Freelancers-Network/internal/http/middleware"
)

type RouterDependencies struct {
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	CommentHandler     *handlers.CommentHandler
	BookmarkHandler    *handlers.BookmarkHandler
	UserHandler        *handlers.UserHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	Logger             *zap.Logger
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path
		segments := splitPath(path)

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics" && r.deps.Metrics != nil:
			r.deps.Metrics.Handler().ServeHTTP(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.List(w, req)
			return
		case req.Method == http.MethodGet && len(segments) == 3 && segments[0] == "jobs" && segments[2] == "comments":
			r.deps.CommentHandler.List(w, req)
			return
		case req.Method == http.MethodGet && len(segments) == 2 && segments[0] == "jobs" && segments[1] != "bookmarked":
			r.deps.JobHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && path == "/users/freelancers":
			r.deps.UserHandler.ListFreelancers(w, req)
			return
		case req.Method == http.MethodGet && path == "/users/skills":
			r.deps.UserHandler.TopSkills(w, req)
			return
		case req.Method == http.MethodGet && len(segments) == 2 && segments[0] == "users" && segments[1] != "profile" && segments[1] != "applications":
			r.deps.UserHandler.GetProfile(w, req)
			return
		}

		if strings.HasPrefix(path, "/jobs") || strings.HasPrefix(path, "/users") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	segments := splitPath(path)

	switch {
	case req.Method == http.MethodPost && path == "/jobs":
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/jobs/bookmarked":
		r.deps.BookmarkHandler.List(w, req)
		return
	case req.Method == http.MethodPut && len(segments) == 2 && segments[0] == "jobs":
		r.deps.JobHandler.Update(w, req)
		return
	case req.Method == http.MethodPatch && len(segments) == 3 && segments[0] == "jobs" && segments[2] == "status":
		r.deps.JobHandler.UpdateStatus(w, req)
		return
	case req.Method == http.MethodDelete && len(segments) == 2 && segments[0] == "jobs":
		r.deps.JobHandler.Delete(w, req)
		return
	case req.Method == http.MethodPost && len(segments) == 3 && segments[0] == "jobs" && segments[2] == "apply":
		httpmw.RequireRole(user.RoleFreelancer)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && len(segments) == 4 && segments[0] == "jobs" && segments[2] == "hire":
		r.deps.ApplicationHandler.Hire(w, req)
		return
	case req.Method == http.MethodPost && len(segments) == 3 && segments[0] == "jobs" && segments[2] == "bookmark":
		r.deps.BookmarkHandler.Toggle(w, req)
		return
	case req.Method == http.MethodPost && len(segments) == 3 && segments[0] == "jobs" && segments[2] == "comments":
		r.deps.CommentHandler.Add(w, req)
		return
	case req.Method == http.MethodGet && len(segments) == 3 && segments[0] == "jobs" && segments[2] == "applications":
		r.deps.ApplicationHandler.ListByJob(w, req)
		return
	case req.Method == http.MethodPut && path == "/users/profile":
		r.deps.UserHandler.UpdateProfile(w, req)
		return
	case req.Method == http.MethodGet && path == "/users/applications":
		httpmw.RequireRole(user.RoleFreelancer)(http.HandlerFunc(r.deps.ApplicationHandler.ListMine)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && len(segments) == 4 && segments[0] == "users" && segments[1] == "applications":
		r.deps.ApplicationHandler.SetStatus(w, req)
		return
	}

	http.NotFound(w, req)
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
