package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

func newUserService(repo *fakeUserRepo) *UserService {
	return NewUserService(repo, testLogger(), nil, false)
}

func register(t *testing.T, svc *UserService, email string) string {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterInput{
		Username:  "shopper",
		Email:     email,
		Password:  "password123",
		SecretKey: "my-secret",
	})
	require.NoError(t, err)
	return u.ID
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "shopper", Email: "a@example.com", Password: "password123", SecretKey: "s",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "password123", u.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(newFakeUserRepo())
	register(t, svc, "a@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "other", Email: "a@example.com", Password: "password456", SecretKey: "s2",
	})
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(newFakeUserRepo())
	register(t, svc, "a@example.com")

	token, exp, err := svc.Login(ctx, LoginInput{
		Email: "a@example.com", Password: "password123", SecretKey: "my-secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	// the issued token resolves back to the user via the stored secret
	u, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(newFakeUserRepo())
	register(t, svc, "a@example.com")

	_, _, err := svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "wrong-password", SecretKey: "my-secret"})
	require.Error(t, err)
	wrongPassword := apperr.Message(err)

	_, _, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "password123", SecretKey: "my-secret"})
	require.Error(t, err)
	unknownEmail := apperr.Message(err)

	// the caller cannot tell which part was wrong
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, "invalid credentials", wrongPassword)
}

func TestAuthenticateRejectsForgedToken(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(newFakeUserRepo())
	register(t, svc, "a@example.com")

	// a token signed with a secret other than the stored one is rejected even
	// though its email claim points at a real user
	token, _, err := svc.Login(ctx, LoginInput{
		Email: "a@example.com", Password: "password123", SecretKey: "attacker-chosen",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	assert.True(t, apperr.IsKind(err, apperr.BadInput))
}

func TestResetPasswordVerifiesOld(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(newFakeUserRepo())
	id := register(t, svc, "a@example.com")

	err := svc.ResetPassword(ctx, id, "wrong-old", "newpassword1")
	assert.True(t, apperr.IsKind(err, apperr.BadInput))

	require.NoError(t, svc.ResetPassword(ctx, id, "password123", "newpassword1"))

	_, _, err = svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "password123", SecretKey: "my-secret"})
	assert.Error(t, err)
	_, _, err = svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "newpassword1", SecretKey: "my-secret"})
	assert.NoError(t, err)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(newFakeUserRepo())
	id := register(t, svc, "a@example.com")

	u, err := svc.UpdateUser(ctx, id, UpdateUserInput{Username: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", u.Username)
	assert.Equal(t, "a@example.com", u.Email)

	_, err = svc.UpdateUser(ctx, "missing", UpdateUserInput{Username: "x"})
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(newFakeUserRepo())
	id := register(t, svc, "a@example.com")

	require.NoError(t, svc.DeleteUser(ctx, id))
	err := svc.DeleteUser(ctx, id)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
