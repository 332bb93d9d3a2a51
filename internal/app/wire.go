package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	certrender "github.com/heartmarshall/fairplay-backend/internal/adapter/certificate"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/mail"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	alertrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/alert"
	certrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/certificate"
	commentrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/comment"
	forumrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/forum"
	gamerepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/game"
	lessonrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/lesson"
	lessonquizrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/lessonquiz"
	messagerepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/message"
	modulequizrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/modulequiz"
	newsletterrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/newsletter"
	postrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/post"
	userrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/fairplay-backend/internal/auth"
	"github.com/heartmarshall/fairplay-backend/internal/config"
	"github.com/heartmarshall/fairplay-backend/internal/service/alert"
	"github.com/heartmarshall/fairplay-backend/internal/service/certificate"
	"github.com/heartmarshall/fairplay-backend/internal/service/comment"
	"github.com/heartmarshall/fairplay-backend/internal/service/forum"
	"github.com/heartmarshall/fairplay-backend/internal/service/game"
	"github.com/heartmarshall/fairplay-backend/internal/service/lesson"
	"github.com/heartmarshall/fairplay-backend/internal/service/lessonquiz"
	"github.com/heartmarshall/fairplay-backend/internal/service/message"
	"github.com/heartmarshall/fairplay-backend/internal/service/modulequiz"
	"github.com/heartmarshall/fairplay-backend/internal/service/newsletter"
	"github.com/heartmarshall/fairplay-backend/internal/service/post"
	"github.com/heartmarshall/fairplay-backend/internal/service/user"
	"github.com/heartmarshall/fairplay-backend/internal/transport/dataloader"
	"github.com/heartmarshall/fairplay-backend/internal/transport/middleware"
	"github.com/heartmarshall/fairplay-backend/internal/transport/rest"
)

// Server is the assembled HTTP stack.
type Server struct {
	Handler http.Handler
	JWT     *auth.JWTManager

	limiter *middleware.RateLimiter
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// NewServer wires repositories, services, handlers and middleware on top
// of pool.
func NewServer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Server, error) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	users := userrepo.New(pool)
	posts := postrepo.New(pool)
	comments := commentrepo.New(pool)
	forums := forumrepo.New(pool)
	members := forumrepo.NewMembers(pool)
	forumMessages := forumrepo.NewMessages(pool)
	moduleQuizzes := modulequizrepo.New(pool)
	lessons := lessonrepo.New(pool)
	lessonQuizzes := lessonquizrepo.New(pool)
	scores := gamerepo.New(pool)
	messages := messagerepo.New(pool)
	alerts := alertrepo.New(pool)
	certs := certrepo.New(pool)
	subscribers := newsletterrepo.New(pool)

	// Adapters.
	renderer, err := certrender.NewRenderer(cfg.Certificates.Dir)
	if err != nil {
		return nil, fmt.Errorf("certificate renderer: %w", err)
	}
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	userSvc := user.NewService(logger, users, txm)
	postSvc := post.NewService(logger, posts, users, txm)
	commentSvc := comment.NewService(logger, comments, posts, users, txm)
	forumSvc := forum.NewService(logger, forums, members, forumMessages, users, txm)
	certSvc := certificate.NewService(logger, certs, moduleQuizzes, users, renderer)
	moduleQuizSvc := modulequiz.NewService(logger, moduleQuizzes, users, certSvc, txm)
	lessonSvc := lesson.NewService(logger, lessons, moduleQuizzes, users, txm)
	lessonQuizSvc := lessonquiz.NewService(logger, lessonQuizzes, users, txm)
	gameSvc := game.NewService(logger, scores, users, txm)
	messageSvc := message.NewService(logger, messages, users)
	alertSvc := alert.NewService(logger, alerts, users)
	newsletterSvc := newsletter.NewService(logger, subscribers, newMailer(cfg.Mail, logger))

	// Handlers.
	handlers := rest.Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		User:        rest.NewUserHandler(userSvc, logger),
		Post:        rest.NewPostHandler(postSvc, commentSvc, logger),
		Forum:       rest.NewForumHandler(forumSvc, logger),
		ModuleQuiz:  rest.NewModuleQuizHandler(moduleQuizSvc, logger),
		Lesson:      rest.NewLessonHandler(lessonSvc, lessonQuizSvc, logger),
		Game:        rest.NewGameHandler(gameSvc, logger),
		Message:     rest.NewMessageHandler(messageSvc, logger),
		Alert:       rest.NewAlertHandler(alertSvc, logger),
		Certificate: rest.NewCertificateHandler(certSvc, logger),
		Newsletter:  rest.NewNewsletterHandler(newsletterSvc, logger),
	}

	// Middleware.
	srv := &Server{JWT: jwtManager}
	api := []middleware.Middleware{}
	if cfg.RateLimit.Enabled {
		srv.limiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		api = append(api, srv.limiter.Middleware())
	}
	api = append(api,
		middleware.Auth(jwtManager),
		dataloader.Middleware(users),
		middleware.Transaction(txm, logger),
	)

	metrics := middleware.NewMetrics(true)
	router := rest.NewRouter(handlers, metrics.Handler(), middleware.Chain(api...))

	srv.Handler = middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		metrics.Middleware(),
		middleware.CORS(cfg.CORS),
	)(router)
	return srv, nil
}

// newMailer sends through SendGrid when an API key is configured and only
// logs otherwise.
func newMailer(cfg config.MailConfig, logger *slog.Logger) mail.Sender {
	if !cfg.Enabled() {
		return mail.NewLog(logger)
	}
	return mail.NewSendGrid(logger, mail.Config{
		APIKey:    cfg.SendGridAPIKey,
		Host:      cfg.SendGridHost,
		FromName:  cfg.FromName,
		FromEmail: cfg.FromEmail,
	})
}
