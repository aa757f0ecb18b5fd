package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	pkgerrors "github.com/datainsight/sst-backend/internal/pkg/errors"
	"github.com/datainsight/sst-backend/internal/platform/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*domain.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*domain.User, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *domain.User) (*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var result domain.User
	err := transaction.WithContext(ctx).First(&result, userID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var result domain.User
	err := transaction.WithContext(ctx).Where("email = ?", email).First(&result).Error
	if err == gorm.ErrRecordNotFound {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
