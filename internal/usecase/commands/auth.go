package commands

import (
	"context"

	"tripstack/internal/domain/user"
	"tripstack/internal/infra"
	"tripstack/internal/pkg/errs"
	"tripstack/internal/pkg/jwt"
	"tripstack/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrInvalidUserInput   = errs.New("invalid user input")
	ErrUserNotFound       = errs.New("user not found")
)

type AuthCommands interface {
	Register(ctx context.Context, email, username, rawPassword string) (*UserSnapshot, error)
	Login(ctx context.Context, email, rawPassword string) (string, *UserSnapshot, error)
	UpdateUsername(ctx context.Context, userID uuid.UUID, username string) error
}

type authCommandsImpl struct {
	users      UserRepository
	userReads  UserReader
	jwtService *jwt.Service
}

func NewAuthCommands(users UserRepository, userReads UserReader, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		userReads:  userReads,
		jwtService: jwtService,
	}
}

func (c *authCommandsImpl) Register(ctx context.Context, email, username, rawPassword string) (*UserSnapshot, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}
	passwordVO, err := user.NewPassword(rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}
	if username == "" {
		return nil, errs.Mark(user.ErrEmptyUsername, ErrInvalidUserInput)
	}

	if _, err := c.userReads.FindByEmail(ctx, emailVO.Value()); err == nil {
		return nil, ErrEmailTaken
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	hash, err := password.HashPassword(passwordVO.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	u := user.NewUser(emailVO, username, hash, user.RoleUser)
	if err := c.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &UserSnapshot{
		ID:       u.ID(),
		Email:    u.Email().Value(),
		Username: u.Username(),
		Role:     u.Role(),
	}, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (string, *UserSnapshot, error) {
	u, err := c.userReads.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(u.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := c.jwtService.GenerateToken(u.ID, u.Role)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to sign token")
	}
	return token, u, nil
}

func (c *authCommandsImpl) UpdateUsername(ctx context.Context, userID uuid.UUID, username string) error {
	if username == "" {
		return errs.Mark(user.ErrEmptyUsername, ErrInvalidUserInput)
	}

	if err := c.users.UpdateUsername(ctx, userID, username); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
