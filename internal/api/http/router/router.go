package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dayboard/dayboard-server/internal/api/http/handler"
	"github.com/dayboard/dayboard-server/internal/api/http/middleware"
	"github.com/dayboard/dayboard-server/internal/logger"
	"github.com/dayboard/dayboard-server/internal/model"
)

// Router wires the HTTP handlers and middleware. Routes are grouped into a
// public set, an auth-token set and the single refresh-token route.
type Router struct {
	authService    handler.AuthService
	taskService    handler.TaskService
	feedService    handler.FeedService
	authenticator  middleware.Authenticator
	pinger         handler.Pinger
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	taskService handler.TaskService,
	feedService handler.FeedService,
	authenticator middleware.Authenticator,
	pinger handler.Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		taskService:    taskService,
		feedService:    feedService,
		authenticator:  authenticator,
		pinger:         pinger,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route tree with logging on every route and token
// checks on the protected subrouters.
func (r *Router) Register() http.Handler {
	root := mux.NewRouter()

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authenticator, r.contextManager, r.logger)

	root.Use(logging.Handle)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	taskHandler := handler.NewTask(r.taskService, r.contextManager, r.logger)
	feedHandler := handler.NewFeed(r.feedService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.pinger)

	// Public routes: verification flows carry no token yet.
	root.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)
	root.HandleFunc("/signup", authHandler.SignupStart).Methods(http.MethodPost)
	root.HandleFunc("/signup/verify", authHandler.SignupVerify).Methods(http.MethodPost)
	root.HandleFunc("/login", authHandler.LoginStart).Methods(http.MethodPost)
	root.HandleFunc("/login/verify", authHandler.LoginVerify).Methods(http.MethodPost)

	refresh := root.PathPrefix("/token").Subrouter()
	refresh.Use(authenticate.RequireRefresh)
	refresh.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)

	protected := root.PathPrefix("").Subrouter()
	protected.Use(authenticate.RequireAuth)
	protected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/account/delete", authHandler.DeleteStart).Methods(http.MethodPost)
	protected.HandleFunc("/account/delete/verify", authHandler.DeleteVerify).Methods(http.MethodPost)
	protected.HandleFunc("/user", authHandler.GetUser).Methods(http.MethodGet)
	protected.HandleFunc("/user", authHandler.UpdateName).Methods(http.MethodPatch)
	protected.HandleFunc("/tasks", taskHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/tasks", taskHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/tasks/{id}", taskHandler.Update).Methods(http.MethodPatch)
	protected.HandleFunc("/tasks/{id}", taskHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/feed/image", feedHandler.GetImage).Methods(http.MethodGet)
	protected.HandleFunc("/feed/quote", feedHandler.GetQuote).Methods(http.MethodGet)
	protected.HandleFunc("/feed/quotes", feedHandler.AddQuote).Methods(http.MethodPost)

	return root
}
