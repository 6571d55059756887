package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
	"github.com/oksasatya/go-commerce-api/pkg/helpers"
	"github.com/oksasatya/go-commerce-api/pkg/mailer"
)

// UserService handles accounts and the auth sub-flow. Tokens are signed with
// a per-user secret rather than a server-held key; the middleware always
// verifies against the secret stored at registration.
type UserService struct {
	Repo        repository.UserRepository
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *UserService {
	return &UserService{Repo: repo, Logger: logger, Pub: pub, MailEnabled: mailEnabled}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	SecretKey string
}

// Register hashes the password and persists the account. The hash is never
// returned to the caller.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	switch {
	case in.Username == "":
		return nil, apperr.New(apperr.BadInput, "username is required")
	case in.Email == "":
		return nil, apperr.New(apperr.BadInput, "email is required")
	case in.Password == "":
		return nil, apperr.New(apperr.BadInput, "password is required")
	case in.SecretKey == "":
		return nil, apperr.New(apperr.BadInput, "secretKey is required")
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		SecretKey:    in.SecretKey,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.New(apperr.Conflict, "email is already registered")
		}
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while registering the user", err)
	}
	s.enqueueWelcome(ctx, u)
	return u, nil
}

type LoginInput struct {
	Email     string
	Password  string
	SecretKey string
}

// Login verifies credentials and issues a one-hour token carrying the user's
// email. Failures are generic: the caller never learns whether the email or
// the password was wrong.
func (s *UserService) Login(ctx context.Context, in LoginInput) (string, time.Time, error) {
	if in.Email == "" || in.Password == "" || in.SecretKey == "" {
		return "", time.Time{}, apperr.New(apperr.BadInput, "email, password and secretKey are required")
	}
	u, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil || u == nil {
		return "", time.Time{}, apperr.New(apperr.BadInput, "invalid credentials")
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, in.Password) {
		return "", time.Time{}, apperr.New(apperr.BadInput, "invalid credentials")
	}
	token, exp, err := helpers.GenerateToken(u.Email, in.SecretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Authenticate resolves a bearer token to its user. The email claim is read
// unverified first; the signature is then checked against that user's stored
// secret.
func (s *UserService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	email, err := helpers.UnverifiedEmail(token)
	if err != nil {
		return nil, apperr.New(apperr.BadInput, "invalid access token")
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, apperr.New(apperr.BadInput, "invalid access token")
	}
	if _, err := helpers.ParseToken(token, u.SecretKey); err != nil {
		return nil, apperr.New(apperr.BadInput, "invalid access token")
	}
	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, apperr.New(apperr.BadInput, "user id is required")
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

type UpdateUserInput struct {
	Username string
	Email    string
}

func (s *UserService) UpdateUser(ctx context.Context, userID string, in UpdateUserInput) (*entity.User, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Username != "" {
		u.Username = in.Username
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.New(apperr.Conflict, "email is already registered")
		}
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while updating the user", err)
	}
	return u, nil
}

// ResetPassword verifies the old password before storing the new hash.
func (s *UserService) ResetPassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperr.New(apperr.BadInput, "oldPassword and newPassword are required")
	}
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, oldPassword) {
		return apperr.New(apperr.BadInput, "invalid credentials")
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(ctx, u.ID, hash); err != nil {
		return apperr.Wrap(apperr.UpstreamFailure, "error occurred while updating the password", err)
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if userID == "" {
		return apperr.New(apperr.BadInput, "user id is required")
	}
	err := s.Repo.Delete(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New(apperr.NotFound, "user not found")
	}
	return err
}

func (s *UserService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Username": u.Username},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}
