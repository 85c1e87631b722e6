package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-auth-service/internal/domain"
	"user-auth-service/internal/validation"
	"user-auth-service/pkg/jwtutil"
	"user-auth-service/pkg/utils"
	"user-auth-service/pkg/xerrors"
)

// Response messages. Credential failures deliberately share one generic
// message so the response never reveals which part was wrong.
const (
	MsgRegisterSuccess    = "User register successful"
	MsgLoginSuccess       = "User login success"
	MsgInvalidCredentials = "Invalid email or password"
	MsgBlocked            = "User is blocked please contact admin."
	MsgNotVerified        = "Account is not verified please verify your account."
	MsgDeleted            = "Your account is deleted please activate your account."
)

// ResultKind classifies an auth outcome for the HTTP layer.
type ResultKind int

const (
	KindOK ResultKind = iota
	KindValidation
	KindCredential
	KindForbidden
	KindInternal
)

// Result is the tagged outcome of a registration or login attempt. The
// service never lets an error escape; every path produces exactly one
// Result for the HTTP layer to map.
type Result struct {
	Kind    ResultKind
	Message string
	Fields  []validation.FieldError
	Token   string
}

// UserRepository is the narrow store interface the service depends on.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthService struct {
	repo      UserRepository
	validator *validation.Validator
	tokens    *jwtutil.Generator
	logger    *zap.Logger
}

func NewAuthService(
	repo UserRepository,
	validator *validation.Validator,
	tokens *jwtutil.Generator,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		repo:      repo,
		validator: validator,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register validates the raw payload, hashes the password and persists a
// new account with all status flags false.
func (s *AuthService) Register(ctx context.Context, payload map[string]any) Result {
	if fields := s.validator.ValidateRegister(payload); len(fields) > 0 {
		return Result{Kind: KindValidation, Fields: fields}
	}

	// Payload is schema-checked; assertions below cannot fail on type.
	username, _ := payload["user_name"].(string)
	email, _ := payload["user_email"].(string)
	password, _ := payload["password"].(string)
	firstName, _ := payload["first_name"].(string)
	lastName, _ := payload["last_name"].(string)
	var phone int64
	if n, ok := payload["phone_no"].(float64); ok {
		phone = int64(n)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return Result{Kind: KindInternal, Message: err.Error()}
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, xerrors.ErrEmailAlreadyInUse) {
			return Result{Kind: KindValidation, Fields: []validation.FieldError{
				{Message: xerrors.ErrEmailAlreadyInUse.Error(), Path: "user_email"},
			}}
		}
		s.logger.Error("create user failed", zap.Error(err))
		return Result{Kind: KindInternal, Message: err.Error()}
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return Result{Kind: KindOK, Message: MsgRegisterSuccess}
}

// Login checks credentials against the store. Flag gates run in fixed
// order (blocked, unverified, deleted) before the password is verified.
func (s *AuthService) Login(ctx context.Context, payload map[string]any) Result {
	if fields := s.validator.ValidateLogin(payload); len(fields) > 0 {
		return Result{Kind: KindValidation, Message: fields[0].Message, Fields: fields}
	}

	email, _ := payload["user_email"].(string)
	password, _ := payload["password"].(string)

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, xerrors.ErrUserNotFound) {
		return Result{Kind: KindCredential, Message: MsgInvalidCredentials}
	}
	if err != nil {
		s.logger.Error("find user failed", zap.Error(err))
		return Result{Kind: KindInternal, Message: err.Error()}
	}

	if user.IsBlocked {
		s.logger.Warn("login attempt on blocked account", zap.String("user_id", user.ID))
		return Result{Kind: KindForbidden, Message: MsgBlocked}
	}
	if !user.IsVerified {
		return Result{Kind: KindForbidden, Message: MsgNotVerified}
	}
	if user.IsDeleted {
		return Result{Kind: KindForbidden, Message: MsgDeleted}
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return Result{Kind: KindCredential, Message: MsgInvalidCredentials}
	}

	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return Result{Kind: KindInternal, Message: err.Error()}
	}

	return Result{Kind: KindOK, Message: MsgLoginSuccess, Token: token}
}
