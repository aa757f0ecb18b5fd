package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	pkgerrors "github.com/datainsight/sst-backend/internal/pkg/errors"
	"github.com/datainsight/sst-backend/internal/platform/logger"
)

type UserTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, token *domain.UserToken) (*domain.UserToken, error)
	GetByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) (*domain.UserToken, error)
	GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*domain.UserToken, error)
	Delete(ctx context.Context, tx *gorm.DB, token *domain.UserToken) error
	DeleteExpiredByUserID(ctx context.Context, tx *gorm.DB, userID uint, now time.Time) error
}

type userTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return &userTokenRepo{db: db, log: baseLog.With("repo", "UserTokenRepo")}
}

func (tr *userTokenRepo) Create(ctx context.Context, tx *gorm.DB, token *domain.UserToken) (*domain.UserToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Create(token).Error; err != nil {
		return nil, err
	}
	return token, nil
}

func (tr *userTokenRepo) GetByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) (*domain.UserToken, error) {
	return tr.getByColumn(ctx, tx, "access_token", accessToken)
}

func (tr *userTokenRepo) GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*domain.UserToken, error) {
	return tr.getByColumn(ctx, tx, "refresh_token", refreshToken)
}

func (tr *userTokenRepo) getByColumn(ctx context.Context, tx *gorm.DB, column, value string) (*domain.UserToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var result domain.UserToken
	err := transaction.WithContext(ctx).Where(column+" = ?", value).First(&result).Error
	if err == gorm.ErrRecordNotFound {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (tr *userTokenRepo) Delete(ctx context.Context, tx *gorm.DB, token *domain.UserToken) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).Unscoped().Delete(token).Error
}

func (tr *userTokenRepo) DeleteExpiredByUserID(ctx context.Context, tx *gorm.DB, userID uint, now time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).
		Unscoped().
		Where("user_id = ? AND expires_at < ?", userID, now).
		Delete(&domain.UserToken{}).Error
}
