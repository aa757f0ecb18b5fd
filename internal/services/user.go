package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	pkgerrors "github.com/datainsight/sst-backend/internal/pkg/errors"
	"github.com/datainsight/sst-backend/internal/platform/ctxutil"
	"github.com/datainsight/sst-backend/internal/platform/logger"
	"github.com/datainsight/sst-backend/internal/repos"
)

type UserService interface {
	GetMe(ctx context.Context) (*domain.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{db: db, log: log.With("service", "UserService"), userRepo: userRepo}
}

func (us *userService) GetMe(ctx context.Context) (*domain.User, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == 0 {
		return nil, fmt.Errorf("%w: no session in context", pkgerrors.ErrUnauthorized)
	}
	user, err := us.userRepo.GetByID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}
	return user, nil
}
