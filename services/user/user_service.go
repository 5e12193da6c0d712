package userservice

import (
	"context"
	"strings"

	"assetdesk/models"
	"assetdesk/providers"
	"assetdesk/providers/middlewareprovider"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req RegisterReq) (uuid.UUID, error)
	Login(ctx context.Context, req LoginReq) (LoginRes, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (ProfileRes, error)
}

type userService struct {
	repo  UserRepository
	redis providers.RedisProvider
}

func NewUserService(repo UserRepository, redis providers.RedisProvider) UserService {
	return &userService{repo: repo, redis: redis}
}

func (s *userService) Register(ctx context.Context, req RegisterReq) (uuid.UUID, error) {
	role := models.ViewerRole
	if req.Role != "" {
		parsed := models.Role(req.Role)
		if !parsed.IsValid() {
			return uuid.Nil, models.ValidationError{Field: "role", Reason: "unknown role"}
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to hash password")
	}

	created, err := s.repo.CreateUser(ctx, User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	})
	if err != nil {
		return uuid.Nil, err
	}
	zap.L().Info("user registered", zap.String("email", created.Email), zap.String("role", string(created.Role)))
	return created.ID, nil
}

func (s *userService) Login(ctx context.Context, req LoginReq) (LoginRes, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if models.IsNotFound(err) {
			// do not leak whether the account exists
			return LoginRes{}, models.ValidationError{Field: "credentials", Reason: "invalid email or password"}
		}
		return LoginRes{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return LoginRes{}, models.ValidationError{Field: "credentials", Reason: "invalid email or password"}
	}

	userID := user.ID.String()
	roles := []string{string(user.Role)}

	accessToken, err := middlewareprovider.GenerateJWT(userID, roles)
	if err != nil {
		return LoginRes{}, errors.Wrap(err, "failed to generate access token")
	}
	refreshToken, err := middlewareprovider.GenerateRefreshToken(userID)
	if err != nil {
		return LoginRes{}, errors.Wrap(err, "failed to generate refresh token")
	}
	if err := middlewareprovider.StoreRefreshToken(ctx, s.redis, userID, refreshToken); err != nil {
		return LoginRes{}, errors.Wrap(err, "failed to store refresh token")
	}

	return LoginRes{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (ProfileRes, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return ProfileRes{}, err
	}
	return ProfileRes{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}, nil
}
