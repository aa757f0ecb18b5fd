package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/normalization"
	pkgerrors "github.com/datainsight/sst-backend/internal/pkg/errors"
	"github.com/datainsight/sst-backend/internal/platform/ctxutil"
	"github.com/datainsight/sst-backend/internal/platform/logger"
	"github.com/datainsight/sst-backend/internal/repos"
)

// Claims carries the user's stored role/plan/company into the token
// so clients can render accordingly. Endpoints never enforce them.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Role      string `json:"role"`
	Plan      string `json:"plan"`
	CompanyID *uint  `json:"company_id,omitempty"`
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

type AuthService interface {
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context) error
	// ContextFromToken validates a bearer token, loads its user, and
	// returns a context carrying the caller's RequestData.
	ContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	AccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:            db,
		log:           log.With("service", "AuthService"),
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.Email = normalization.ParseInputString(user.Email)
	if user.Email == "" || user.Password == "" || user.Name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", pkgerrors.ErrInvalidArgument)
	}
	exists, err := as.userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: user already exists", pkgerrors.ErrInvalidArgument)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = "user"
	}
	if user.Plan == "" {
		user.Plan = "free"
	}
	user.IsActive = true

	created, err := as.userRepo.Create(ctx, nil, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalization.ParseInputString(email)

	user, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err == pkgerrors.ErrNotFound {
		return nil, fmt.Errorf("%w: user not found", pkgerrors.ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user is inactive", pkgerrors.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid password", pkgerrors.ErrUnauthorized)
	}

	var result *LoginResult
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := as.userTokenRepo.DeleteExpiredByUserID(ctx, tx, user.ID, time.Now()); err != nil {
			return fmt.Errorf("failed to clear expired tokens: %w", err)
		}
		pair, err := as.issueTokenPair(ctx, tx, user)
		if err != nil {
			return err
		}
		result = pair
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (as *authService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token required", pkgerrors.ErrInvalidArgument)
	}

	var result *LoginResult
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := as.userTokenRepo.GetByRefreshToken(ctx, tx, refreshToken)
		if err == pkgerrors.ErrNotFound {
			return fmt.Errorf("%w: unknown refresh token", pkgerrors.ErrUnauthorized)
		}
		if err != nil {
			return fmt.Errorf("failed to fetch refresh token: %w", err)
		}
		if existing.ExpiresAt.Before(time.Now()) {
			if dErr := as.userTokenRepo.Delete(ctx, tx, existing); dErr != nil {
				return fmt.Errorf("failed to delete expired refresh token: %w", dErr)
			}
			return fmt.Errorf("%w: refresh token expired", pkgerrors.ErrUnauthorized)
		}

		user, err := as.userRepo.GetByID(ctx, tx, existing.UserID)
		if err != nil {
			return fmt.Errorf("failed to load user for refresh: %w", err)
		}
		if !user.IsActive {
			return fmt.Errorf("%w: user is inactive", pkgerrors.ErrUnauthorized)
		}

		pair, err := as.issueTokenPair(ctx, tx, user)
		if err != nil {
			return err
		}
		if err := as.userTokenRepo.Delete(ctx, tx, existing); err != nil {
			return fmt.Errorf("failed to remove rotated token: %w", err)
		}
		result = pair
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (as *authService) Logout(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return fmt.Errorf("%w: no session in context", pkgerrors.ErrUnauthorized)
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := as.userTokenRepo.GetByAccessToken(ctx, tx, rd.TokenString)
		if err == pkgerrors.ErrNotFound {
			// Already logged out elsewhere; nothing to revoke.
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to fetch session token: %w", err)
		}
		if err := as.userTokenRepo.Delete(ctx, tx, token); err != nil {
			return fmt.Errorf("failed to delete session token: %w", err)
		}
		return nil
	})
}

func (as *authService) ContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("%w: %v", pkgerrors.ErrUnauthorized, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return ctx, fmt.Errorf("%w: invalid token", pkgerrors.ErrUnauthorized)
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return ctx, fmt.Errorf("%w: invalid subject in token", pkgerrors.ErrUnauthorized)
	}

	user, err := as.userRepo.GetByID(ctx, nil, uint(userID))
	if err == pkgerrors.ErrNotFound {
		return ctx, fmt.Errorf("%w: user no longer exists", pkgerrors.ErrUnauthorized)
	}
	if err != nil {
		return ctx, fmt.Errorf("failed to load token user: %w", err)
	}
	if !user.IsActive {
		return ctx, fmt.Errorf("%w: user is inactive", pkgerrors.ErrUnauthorized)
	}

	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		UserID:      user.ID,
		Role:        user.Role,
		Plan:        user.Plan,
		TokenString: tokenString,
	}), nil
}

func (as *authService) AccessTTL() time.Duration {
	return as.accessTTL
}

func (as *authService) issueTokenPair(ctx context.Context, tx *gorm.DB, user *domain.User) (*LoginResult, error) {
	accessToken, err := as.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken := uuid.New().String()
	token := domain.UserToken{
		ID:           uuid.New(),
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(as.refreshTTL),
	}
	if _, err := as.userTokenRepo.Create(ctx, tx, &token); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}
	return &LoginResult{AccessToken: accessToken, RefreshToken: refreshToken, User: user}, nil
}

func (as *authService) generateAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:     user.Email,
		Role:      user.Role,
		Plan:      user.Plan,
		CompanyID: user.CompanyID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}
