package rest

import (
	"net/http"

	"github.com/heartmarshall/fairplay-backend/internal/transport/httperr"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health      *HealthHandler
	User        *UserHandler
	Post        *PostHandler
	Forum       *ForumHandler
	ModuleQuiz  *ModuleQuizHandler
	Lesson      *LessonHandler
	Game        *GameHandler
	Message     *MessageHandler
	Alert       *AlertHandler
	Certificate *CertificateHandler
	Newsletter  *NewsletterHandler
}

// NewRouter mounts the API behind apiMW. Probes and metrics are served
// directly so they are never rate-limited or wrapped in a transaction.
func NewRouter(h Handlers, metrics http.Handler, apiMW func(http.Handler) http.Handler) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/", notFound)

	api.HandleFunc("GET /users", h.User.List)
	api.HandleFunc("POST /users", h.User.Create)
	api.HandleFunc("GET /users/internal", h.User.ListInternal)
	api.HandleFunc("POST /users/search", h.User.Search)
	api.HandleFunc("GET /users/{id}", h.User.Get)
	api.HandleFunc("PATCH /users/{id}", h.User.Update)
	api.HandleFunc("DELETE /users/{id}", h.User.Delete)
	api.HandleFunc("POST /users/{id}/restore", h.User.Restore)
	api.HandleFunc("GET /users/{id}/posts", h.Post.ListByUser)
	api.HandleFunc("GET /users/{id}/module-progress", h.ModuleQuiz.TotalProgress)
	api.HandleFunc("GET /users/{id}/game-total", h.Game.UserTotal)

	api.HandleFunc("GET /posts", h.Post.List)
	api.HandleFunc("POST /posts", h.Post.Create)
	api.HandleFunc("GET /posts/{id}", h.Post.Get)
	api.HandleFunc("PATCH /posts/{id}", h.Post.Update)
	api.HandleFunc("DELETE /posts/{id}", h.Post.Delete)
	api.HandleFunc("POST /posts/{id}/like", h.Post.Like)
	api.HandleFunc("POST /posts/{id}/unlike", h.Post.Unlike)
	api.HandleFunc("GET /posts/{id}/comments", h.Post.ListComments)

	api.HandleFunc("POST /comments", h.Post.CreateComment)
	api.HandleFunc("GET /comments/{id}", h.Post.GetComment)
	api.HandleFunc("PATCH /comments/{id}", h.Post.UpdateComment)
	api.HandleFunc("DELETE /comments/{id}", h.Post.DeleteComment)
	api.HandleFunc("POST /comments/{id}/like", h.Post.LikeComment)

	api.HandleFunc("GET /forums", h.Forum.List)
	api.HandleFunc("POST /forums", h.Forum.Create)
	api.HandleFunc("GET /forums/{id}", h.Forum.Get)
	api.HandleFunc("DELETE /forums/{id}", h.Forum.Delete)
	api.HandleFunc("POST /forums/members", h.Forum.AddMember)
	api.HandleFunc("GET /forums/{id}/members", h.Forum.ListMembers)
	api.HandleFunc("POST /forums/messages", h.Forum.PostMessage)
	api.HandleFunc("GET /forums/{id}/messages", h.Forum.ListMessages)

	api.HandleFunc("POST /module-quizzes", h.ModuleQuiz.Create)
	api.HandleFunc("GET /module-quizzes/{id}", h.ModuleQuiz.Get)
	api.HandleFunc("DELETE /module-quizzes/{id}", h.ModuleQuiz.Delete)
	api.HandleFunc("GET /module-quizzes/user/{user_id}", h.ModuleQuiz.ListByUser)
	api.HandleFunc("PATCH /module-quizzes/{id}/progress", h.ModuleQuiz.IncrementProgress)
	api.HandleFunc("PATCH /module-quizzes/{id}/completed", h.ModuleQuiz.IncrementCompleted)
	api.HandleFunc("PATCH /module-quizzes/{id}/score", h.ModuleQuiz.UpdateScore)

	api.HandleFunc("POST /lessons", h.Lesson.Create)
	api.HandleFunc("GET /lessons/{id}", h.Lesson.Get)
	api.HandleFunc("DELETE /lessons/{id}", h.Lesson.Delete)
	api.HandleFunc("GET /lessons/user/{user_id}", h.Lesson.ListByUser)
	api.HandleFunc("PATCH /lessons/{id}/completed", h.Lesson.IncrementCompleted)
	api.HandleFunc("PATCH /lessons/{id}/quiz-score", h.Lesson.SetQuizScore)
	api.HandleFunc("GET /lessons/quiz-score/{id}", h.Lesson.QuizScore)

	api.HandleFunc("POST /lesson-quizzes", h.Lesson.CreateQuiz)
	api.HandleFunc("GET /lesson-quizzes/{id}", h.Lesson.GetQuiz)
	api.HandleFunc("DELETE /lesson-quizzes/{id}", h.Lesson.DeleteQuiz)
	api.HandleFunc("GET /lesson-quizzes/user/{user_id}", h.Lesson.ListQuizzesByUser)
	api.HandleFunc("PATCH /lesson-quizzes/{id}/score", h.Lesson.UpdateQuizScore)

	api.HandleFunc("POST /games", h.Game.Record)
	api.HandleFunc("GET /games/leaderboard", h.Game.Leaderboard)
	api.HandleFunc("GET /games/user/{user_id}", h.Game.ListByUser)
	api.HandleFunc("GET /games/name/{game_name}", h.Game.ListByGame)

	api.HandleFunc("POST /messages", h.Message.Send)
	api.HandleFunc("GET /messages/user/{user_id}", h.Message.ListByUser)
	api.HandleFunc("GET /messages/conversation/{a}/{b}", h.Message.Conversation)
	api.HandleFunc("PATCH /messages/{id}/read", h.Message.MarkRead)
	api.HandleFunc("DELETE /messages/{id}", h.Message.Delete)

	api.HandleFunc("POST /alerts", h.Alert.Create)
	api.HandleFunc("GET /alerts/{id}", h.Alert.Get)
	api.HandleFunc("DELETE /alerts/{id}", h.Alert.Delete)
	api.HandleFunc("GET /alerts/user/{user_id}", h.Alert.ListByUser)
	api.HandleFunc("GET /alerts/upcoming", h.Alert.Upcoming)
	api.HandleFunc("GET /alerts/user/{user_id}/upcoming", h.Alert.UpcomingForUser)

	api.HandleFunc("POST /certificates", h.Certificate.Create)
	api.HandleFunc("GET /certificates/{id}", h.Certificate.Get)
	api.HandleFunc("GET /certificates/user/{user_id}", h.Certificate.ListByUser)
	api.HandleFunc("GET /certificates/download/{id}", h.Certificate.Download)

	api.HandleFunc("POST /newsletter/subscribe", h.Newsletter.Subscribe)

	root := http.NewServeMux()
	root.HandleFunc("GET /ping", h.Health.Ping)
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	if metrics != nil {
		root.Handle("GET /metrics", metrics)
	}
	root.Handle("/", apiMW(api))
	return root
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	httperr.Write(w, httperr.NotFound, "Not found")
}
