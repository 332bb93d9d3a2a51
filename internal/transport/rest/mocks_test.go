package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/alert"
	"github.com/heartmarshall/fairplay-backend/internal/service/forum"
	"github.com/heartmarshall/fairplay-backend/internal/service/modulequiz"
	"github.com/heartmarshall/fairplay-backend/internal/service/newsletter"
	"github.com/heartmarshall/fairplay-backend/internal/service/user"
)

type userServiceMock struct {
	CreateUserFunc   func(ctx context.Context, input user.CreateInput) (*domain.User, error)
	GetUserFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListUsersFunc    func(ctx context.Context) ([]*domain.User, error)
	ListInternalFunc func(ctx context.Context, input user.ListInternalInput) ([]*domain.User, error)
	SearchUsersFunc  func(ctx context.Context, filter domain.FilterMap, includeDeleted bool) ([]*domain.User, error)
	UpdateUserFunc   func(ctx context.Context, input user.UpdateInput) (*domain.User, error)
	DeleteUserFunc   func(ctx context.Context, id uuid.UUID) error
	RestoreUserFunc  func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *userServiceMock) CreateUser(ctx context.Context, input user.CreateInput) (*domain.User, error) {
	if m.CreateUserFunc == nil {
		panic("userServiceMock.CreateUserFunc: method is nil but CreateUser was just called")
	}
	return m.CreateUserFunc(ctx, input)
}

func (m *userServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetUserFunc == nil {
		panic("userServiceMock.GetUserFunc: method is nil but GetUser was just called")
	}
	return m.GetUserFunc(ctx, id)
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if m.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but ListUsers was just called")
	}
	return m.ListUsersFunc(ctx)
}

func (m *userServiceMock) ListInternal(ctx context.Context, input user.ListInternalInput) ([]*domain.User, error) {
	if m.ListInternalFunc == nil {
		panic("userServiceMock.ListInternalFunc: method is nil but ListInternal was just called")
	}
	return m.ListInternalFunc(ctx, input)
}

func (m *userServiceMock) SearchUsers(ctx context.Context, filter domain.FilterMap, includeDeleted bool) ([]*domain.User, error) {
	if m.SearchUsersFunc == nil {
		panic("userServiceMock.SearchUsersFunc: method is nil but SearchUsers was just called")
	}
	return m.SearchUsersFunc(ctx, filter, includeDeleted)
}

func (m *userServiceMock) UpdateUser(ctx context.Context, input user.UpdateInput) (*domain.User, error) {
	if m.UpdateUserFunc == nil {
		panic("userServiceMock.UpdateUserFunc: method is nil but UpdateUser was just called")
	}
	return m.UpdateUserFunc(ctx, input)
}

func (m *userServiceMock) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if m.DeleteUserFunc == nil {
		panic("userServiceMock.DeleteUserFunc: method is nil but DeleteUser was just called")
	}
	return m.DeleteUserFunc(ctx, id)
}

func (m *userServiceMock) RestoreUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.RestoreUserFunc == nil {
		panic("userServiceMock.RestoreUserFunc: method is nil but RestoreUser was just called")
	}
	return m.RestoreUserFunc(ctx, id)
}

type forumServiceMock struct {
	CreateForumFunc  func(ctx context.Context, input forum.CreateForumInput) (*domain.Forum, error)
	GetForumFunc     func(ctx context.Context, id uuid.UUID) (*domain.Forum, error)
	ListForumsFunc   func(ctx context.Context) ([]*domain.Forum, error)
	DeleteForumFunc  func(ctx context.Context, id uuid.UUID) error
	AddMemberFunc    func(ctx context.Context, input forum.AddMemberInput) (*domain.ForumMember, error)
	ListMembersFunc  func(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMember, error)
	PostMessageFunc  func(ctx context.Context, input forum.PostMessageInput) (*domain.ForumMessage, error)
	ListMessagesFunc func(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMessage, error)
}

func (m *forumServiceMock) CreateForum(ctx context.Context, input forum.CreateForumInput) (*domain.Forum, error) {
	if m.CreateForumFunc == nil {
		panic("forumServiceMock.CreateForumFunc: method is nil but CreateForum was just called")
	}
	return m.CreateForumFunc(ctx, input)
}

func (m *forumServiceMock) GetForum(ctx context.Context, id uuid.UUID) (*domain.Forum, error) {
	if m.GetForumFunc == nil {
		panic("forumServiceMock.GetForumFunc: method is nil but GetForum was just called")
	}
	return m.GetForumFunc(ctx, id)
}

func (m *forumServiceMock) ListForums(ctx context.Context) ([]*domain.Forum, error) {
	if m.ListForumsFunc == nil {
		panic("forumServiceMock.ListForumsFunc: method is nil but ListForums was just called")
	}
	return m.ListForumsFunc(ctx)
}

func (m *forumServiceMock) DeleteForum(ctx context.Context, id uuid.UUID) error {
	if m.DeleteForumFunc == nil {
		panic("forumServiceMock.DeleteForumFunc: method is nil but DeleteForum was just called")
	}
	return m.DeleteForumFunc(ctx, id)
}

func (m *forumServiceMock) AddMember(ctx context.Context, input forum.AddMemberInput) (*domain.ForumMember, error) {
	if m.AddMemberFunc == nil {
		panic("forumServiceMock.AddMemberFunc: method is nil but AddMember was just called")
	}
	return m.AddMemberFunc(ctx, input)
}

func (m *forumServiceMock) ListMembers(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMember, error) {
	if m.ListMembersFunc == nil {
		panic("forumServiceMock.ListMembersFunc: method is nil but ListMembers was just called")
	}
	return m.ListMembersFunc(ctx, forumID)
}

func (m *forumServiceMock) PostMessage(ctx context.Context, input forum.PostMessageInput) (*domain.ForumMessage, error) {
	if m.PostMessageFunc == nil {
		panic("forumServiceMock.PostMessageFunc: method is nil but PostMessage was just called")
	}
	return m.PostMessageFunc(ctx, input)
}

func (m *forumServiceMock) ListMessages(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMessage, error) {
	if m.ListMessagesFunc == nil {
		panic("forumServiceMock.ListMessagesFunc: method is nil but ListMessages was just called")
	}
	return m.ListMessagesFunc(ctx, forumID)
}

type moduleQuizServiceMock struct {
	CreateModuleQuizFunc      func(ctx context.Context, input modulequiz.CreateInput) (*domain.ModuleQuiz, error)
	GetModuleQuizFunc         func(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error)
	ListUserModuleQuizzesFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.ModuleQuiz, error)
	DeleteModuleQuizFunc      func(ctx context.Context, id uuid.UUID) error
	TotalProgressFunc         func(ctx context.Context, userID uuid.UUID) (domain.ModuleProgressTotal, error)
	IncrementProgressFunc     func(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error)
	IncrementCompletedFunc    func(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error)
	UpdateScoreFunc           func(ctx context.Context, input modulequiz.ScoreInput) (*domain.ModuleQuiz, error)
}

func (m *moduleQuizServiceMock) CreateModuleQuiz(ctx context.Context, input modulequiz.CreateInput) (*domain.ModuleQuiz, error) {
	if m.CreateModuleQuizFunc == nil {
		panic("moduleQuizServiceMock.CreateModuleQuizFunc: method is nil but CreateModuleQuiz was just called")
	}
	return m.CreateModuleQuizFunc(ctx, input)
}

func (m *moduleQuizServiceMock) GetModuleQuiz(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error) {
	if m.GetModuleQuizFunc == nil {
		panic("moduleQuizServiceMock.GetModuleQuizFunc: method is nil but GetModuleQuiz was just called")
	}
	return m.GetModuleQuizFunc(ctx, id)
}

func (m *moduleQuizServiceMock) ListUserModuleQuizzes(ctx context.Context, userID uuid.UUID) ([]*domain.ModuleQuiz, error) {
	if m.ListUserModuleQuizzesFunc == nil {
		panic("moduleQuizServiceMock.ListUserModuleQuizzesFunc: method is nil but ListUserModuleQuizzes was just called")
	}
	return m.ListUserModuleQuizzesFunc(ctx, userID)
}

func (m *moduleQuizServiceMock) DeleteModuleQuiz(ctx context.Context, id uuid.UUID) error {
	if m.DeleteModuleQuizFunc == nil {
		panic("moduleQuizServiceMock.DeleteModuleQuizFunc: method is nil but DeleteModuleQuiz was just called")
	}
	return m.DeleteModuleQuizFunc(ctx, id)
}

func (m *moduleQuizServiceMock) TotalProgress(ctx context.Context, userID uuid.UUID) (domain.ModuleProgressTotal, error) {
	if m.TotalProgressFunc == nil {
		panic("moduleQuizServiceMock.TotalProgressFunc: method is nil but TotalProgress was just called")
	}
	return m.TotalProgressFunc(ctx, userID)
}

func (m *moduleQuizServiceMock) IncrementProgress(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error) {
	if m.IncrementProgressFunc == nil {
		panic("moduleQuizServiceMock.IncrementProgressFunc: method is nil but IncrementProgress was just called")
	}
	return m.IncrementProgressFunc(ctx, id)
}

func (m *moduleQuizServiceMock) IncrementCompleted(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error) {
	if m.IncrementCompletedFunc == nil {
		panic("moduleQuizServiceMock.IncrementCompletedFunc: method is nil but IncrementCompleted was just called")
	}
	return m.IncrementCompletedFunc(ctx, id)
}

func (m *moduleQuizServiceMock) UpdateScore(ctx context.Context, input modulequiz.ScoreInput) (*domain.ModuleQuiz, error) {
	if m.UpdateScoreFunc == nil {
		panic("moduleQuizServiceMock.UpdateScoreFunc: method is nil but UpdateScore was just called")
	}
	return m.UpdateScoreFunc(ctx, input)
}

type newsletterServiceMock struct {
	SubscribeFunc func(ctx context.Context, input newsletter.SubscribeInput) (*domain.NewsletterSubscriber, error)
}

func (m *newsletterServiceMock) Subscribe(ctx context.Context, input newsletter.SubscribeInput) (*domain.NewsletterSubscriber, error) {
	if m.SubscribeFunc == nil {
		panic("newsletterServiceMock.SubscribeFunc: method is nil but Subscribe was just called")
	}
	return m.SubscribeFunc(ctx, input)
}

type alertServiceMock struct {
	CreateAlertFunc    func(ctx context.Context, input alert.CreateInput) (*domain.Alert, error)
	GetAlertFunc       func(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	ListUserAlertsFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Alert, error)
	UpcomingFunc       func(ctx context.Context, input alert.UpcomingInput) ([]*domain.Alert, error)
	DeleteAlertFunc    func(ctx context.Context, id uuid.UUID) error
}

func (m *alertServiceMock) CreateAlert(ctx context.Context, input alert.CreateInput) (*domain.Alert, error) {
	if m.CreateAlertFunc == nil {
		panic("alertServiceMock.CreateAlertFunc: method is nil but CreateAlert was just called")
	}
	return m.CreateAlertFunc(ctx, input)
}

func (m *alertServiceMock) GetAlert(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	if m.GetAlertFunc == nil {
		panic("alertServiceMock.GetAlertFunc: method is nil but GetAlert was just called")
	}
	return m.GetAlertFunc(ctx, id)
}

func (m *alertServiceMock) ListUserAlerts(ctx context.Context, userID uuid.UUID) ([]*domain.Alert, error) {
	if m.ListUserAlertsFunc == nil {
		panic("alertServiceMock.ListUserAlertsFunc: method is nil but ListUserAlerts was just called")
	}
	return m.ListUserAlertsFunc(ctx, userID)
}

func (m *alertServiceMock) Upcoming(ctx context.Context, input alert.UpcomingInput) ([]*domain.Alert, error) {
	if m.UpcomingFunc == nil {
		panic("alertServiceMock.UpcomingFunc: method is nil but Upcoming was just called")
	}
	return m.UpcomingFunc(ctx, input)
}

func (m *alertServiceMock) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	if m.DeleteAlertFunc == nil {
		panic("alertServiceMock.DeleteAlertFunc: method is nil but DeleteAlert was just called")
	}
	return m.DeleteAlertFunc(ctx, id)
}
