package repository

import (
	"errors"

	"github.com/workwork/workwork-order-service/internal/domain"
	"github.com/workwork/workwork-order-service/internal/infrastructure/postgres/mappers"
	"github.com/workwork/workwork-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserDirectory struct {
	DB *gorm.DB
}

func NewDefaultUserDirectory(db *gorm.DB) *DefaultUserDirectory {
	return &DefaultUserDirectory{DB: db}
}

func (r *DefaultUserDirectory) getUser(userID string) (*models.UserModel, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError("user %s not found", userID)
		}
		return nil, domain.UpstreamError("failed to load user", err)
	}
	return &userModel, nil
}

func (r *DefaultUserDirectory) GetWalletAddress(userID string) (string, error) {
	userModel, err := r.getUser(userID)
	if err != nil {
		return "", err
	}
	return userModel.WalletAddress, nil
}

func (r *DefaultUserDirectory) GetPaymentBindings(userID string) (*domain.PaymentBindings, error) {
	userModel, err := r.getUser(userID)
	if err != nil {
		return nil, err
	}
	return &domain.PaymentBindings{
		HasWallet:        userModel.WalletAddress != "",
		HasPaymentMethod: userModel.SocialWechat != "" || userModel.SocialAlipay != "",
	}, nil
}

func (r *DefaultUserDirectory) GetProfile(userID string) (*domain.UserProfile, error) {
	userModel, err := r.getUser(userID)
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainProfile(userModel), nil
}
