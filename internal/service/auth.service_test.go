package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-auth-service/internal/domain"
	"user-auth-service/internal/service"
	"user-auth-service/internal/validation"
	"user-auth-service/pkg/jwtutil"
	"user-auth-service/pkg/utils"
	"user-auth-service/pkg/xerrors"
)

type fakeRepo struct {
	users     map[string]*domain.User
	createErr error
	findErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*domain.User)}
}

func (f *fakeRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.users[user.Email]; exists {
		return xerrors.ErrEmailAlreadyInUse
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	user, ok := f.users[email]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	return user, nil
}

func newTestService(t *testing.T, repo *fakeRepo) *service.AuthService {
	t.Helper()
	v, err := validation.New()
	require.Nil(t, err)
	tokens := jwtutil.NewGenerator([]byte("test-secret"), "user-auth-service", time.Hour)
	return service.NewAuthService(repo, v, tokens, zap.NewNop())
}

func registerPayload() map[string]any {
	return map[string]any{
		"user_name":  "alice",
		"user_email": "a@b.com",
		"phone_no":   float64(12345),
		"password":   "secret123",
		"first_name": "Ann",
		"last_name":  "Lee",
	}
}

func loginPayload(email, password string) map[string]any {
	return map[string]any{"user_email": email, "password": password}
}

// seed stores a user the way registration would, with chosen flags.
func seed(t *testing.T, repo *fakeRepo, email, password string, verified, blocked, deleted bool) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.Nil(t, err)
	repo.users[email] = &domain.User{
		ID:           "seed-id",
		Username:     "alice",
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Ann",
		LastName:     "Lee",
		IsVerified:   verified,
		IsBlocked:    blocked,
		IsDeleted:    deleted,
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)

	res := svc.Register(context.Background(), registerPayload())
	require.Equal(t, service.KindOK, res.Kind)
	require.Equal(t, service.MsgRegisterSuccess, res.Message)

	user := repo.users["a@b.com"]
	require.NotNil(t, user)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "secret123", user.PasswordHash)
	require.True(t, utils.CheckPasswordHash("secret123", user.PasswordHash))
	require.Equal(t, int64(12345), user.PhoneNumber)

	// registration never auto-verifies
	require.False(t, user.IsVerified)
	require.False(t, user.IsBlocked)
	require.False(t, user.IsDeleted)
}

func TestRegisterValidationFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)

	payload := registerPayload()
	payload["user_name"] = "bob"

	res := svc.Register(context.Background(), payload)
	require.Equal(t, service.KindValidation, res.Kind)
	require.NotEmpty(t, res.Fields)
	require.Equal(t, "user_name", res.Fields[0].Path)
	require.Empty(t, repo.users)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)

	require.Equal(t, service.KindOK, svc.Register(context.Background(), registerPayload()).Kind)

	res := svc.Register(context.Background(), registerPayload())
	require.Equal(t, service.KindValidation, res.Kind)
	require.Len(t, res.Fields, 1)
	require.Equal(t, "user_email", res.Fields[0].Path)
}

func TestRegisterStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("connection reset")
	svc := newTestService(t, repo)

	res := svc.Register(context.Background(), registerPayload())
	require.Equal(t, service.KindInternal, res.Kind)
	require.Equal(t, "connection reset", res.Message)
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)
	seed(t, repo, "a@b.com", "secret123", true, false, false)

	res := svc.Login(context.Background(), loginPayload("a@b.com", "secret123"))
	require.Equal(t, service.KindOK, res.Kind)
	require.Equal(t, service.MsgLoginSuccess, res.Message)
	require.NotEmpty(t, res.Token)

	// token carries the account email
	claims, err := jwtutil.NewGenerator([]byte("test-secret"), "user-auth-service", time.Hour).Parse(res.Token)
	require.Nil(t, err)
	require.Equal(t, "a@b.com", claims.Email)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)

	res := svc.Login(context.Background(), loginPayload("nope@x.com", "whatever1"))
	require.Equal(t, service.KindCredential, res.Kind)
	require.Equal(t, service.MsgInvalidCredentials, res.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)
	seed(t, repo, "a@b.com", "secret123", true, false, false)

	res := svc.Login(context.Background(), loginPayload("a@b.com", "wrongpass"))
	require.Equal(t, service.KindCredential, res.Kind)

	// same generic message for unknown email and wrong password
	unknown := svc.Login(context.Background(), loginPayload("nope@x.com", "whatever1"))
	require.Equal(t, unknown.Message, res.Message)
}

func TestLoginBlockedAccount(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)
	seed(t, repo, "a@b.com", "secret123", true, true, false)

	// blocked wins regardless of password correctness
	res := svc.Login(context.Background(), loginPayload("a@b.com", "wrongpass"))
	require.Equal(t, service.KindForbidden, res.Kind)
	require.Equal(t, service.MsgBlocked, res.Message)
}

func TestLoginUnverifiedAccount(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)
	seed(t, repo, "a@b.com", "secret123", false, false, false)

	res := svc.Login(context.Background(), loginPayload("a@b.com", "secret123"))
	require.Equal(t, service.KindForbidden, res.Kind)
	require.Equal(t, service.MsgNotVerified, res.Message)
}

func TestLoginDeletedAccount(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)
	seed(t, repo, "a@b.com", "secret123", true, false, true)

	res := svc.Login(context.Background(), loginPayload("a@b.com", "secret123"))
	require.Equal(t, service.KindForbidden, res.Kind)
	require.Equal(t, service.MsgDeleted, res.Message)
}

func TestLoginFlagOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)
	// blocked and deleted at once: the blocked gate fires first
	seed(t, repo, "a@b.com", "secret123", false, true, true)

	res := svc.Login(context.Background(), loginPayload("a@b.com", "secret123"))
	require.Equal(t, service.KindForbidden, res.Kind)
	require.Equal(t, service.MsgBlocked, res.Message)
}

func TestLoginValidationFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)

	res := svc.Login(context.Background(), map[string]any{"user_email": "a@b.com"})
	require.Equal(t, service.KindValidation, res.Kind)
	require.NotEmpty(t, res.Message)
}

func TestLoginStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.findErr = errors.New("connection reset")
	svc := newTestService(t, repo)

	res := svc.Login(context.Background(), loginPayload("a@b.com", "secret123"))
	require.Equal(t, service.KindInternal, res.Kind)
}
