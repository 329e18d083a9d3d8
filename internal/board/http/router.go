package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/internal/board/store"
	"github.com/askboard/askboard/pkg/httpx"
	"github.com/askboard/askboard/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService       *service.AuthService
	CredentialService *service.CredentialService
	InviteService     *service.InviteService
	OTPService        *service.OTPService
	RolesService      *service.RolesService
	ForumService      *service.ForumService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerForum()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /login - strict rate limit by IP + username to slow brute force
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /bootstrap - strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /invites - moderate rate limit (admin operation)
	inviteHandler := &InviteMintHandler{InviteService: r.InviteService}
	r.Mux.Handle("POST /v1/invites",
		httpx.Chain(inviteHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	usersHandler := &UsersHandler{CredentialService: r.CredentialService}
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleList),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/users/{username}",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleDelete),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	otpHandler := &OTPIssueHandler{OTPService: r.OTPService}
	r.Mux.Handle("POST /v1/users/{username}/otp",
		httpx.Chain(otpHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	rolesHandler := &RolesHandler{RolesService: r.RolesService}
	r.Mux.Handle("POST /v1/users/{username}/roles",
		httpx.Chain(http.HandlerFunc(rolesHandler.HandleAdd),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/users/{username}/roles/{role}",
		httpx.Chain(http.HandlerFunc(rolesHandler.HandleRemove),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerForum() {
	questions := &QuestionsHandler{ForumService: r.ForumService}
	answers := &AnswersHandler{ForumService: r.ForumService}

	lenient := httpx.RateLimitByIP(httpx.LenientLimit)

	r.Mux.Handle("POST /v1/questions", httpx.Chain(http.HandlerFunc(questions.HandleCreate), lenient))
	r.Mux.Handle("GET /v1/questions", httpx.Chain(http.HandlerFunc(questions.HandleList), lenient))
	r.Mux.Handle("GET /v1/questions/{id}", httpx.Chain(http.HandlerFunc(questions.HandleGet), lenient))
	r.Mux.Handle("PUT /v1/questions/{id}", httpx.Chain(http.HandlerFunc(questions.HandleUpdate), lenient))
	r.Mux.Handle("DELETE /v1/questions/{id}", httpx.Chain(http.HandlerFunc(questions.HandleDelete), lenient))

	r.Mux.Handle("POST /v1/questions/{id}/answers", httpx.Chain(http.HandlerFunc(answers.HandleCreate), lenient))
	r.Mux.Handle("GET /v1/questions/{id}/answers", httpx.Chain(http.HandlerFunc(answers.HandleList), lenient))
	r.Mux.Handle("PUT /v1/answers/{id}", httpx.Chain(http.HandlerFunc(answers.HandleUpdate), lenient))
	r.Mux.Handle("DELETE /v1/answers/{id}", httpx.Chain(http.HandlerFunc(answers.HandleDelete), lenient))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
