package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"swishview/domain/dto"
	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/domain/repository"
	"swishview/infrastructure/configuration"
	"swishview/infrastructure/logger"
	"swishview/infrastructure/utils"
)

type IUserUsecase interface {
	Register(ctx context.Context, req model.ReqRegister) dto.Res
	Login(ctx context.Context, req model.ReqLogin) dto.Res
}

type userUsecase struct {
	profileRepo repository.IProfile
}

func NewUserUsecase(profileRepo repository.IProfile) IUserUsecase {
	return &userUsecase{profileRepo: profileRepo}
}

func (u *userUsecase) Register(ctx context.Context, req model.ReqRegister) dto.Res {
	var res dto.Res
	res.ResponseCode = "200"
	res.ResponseMessage = "OK"

	existing, err := u.profileRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) && !errors.Is(err, sql.ErrNoRows) {
		logger.GetLogger().WithField("error", err).Error("Error while checking existing profile")
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal Server Error"
		return res
	}
	if existing != nil {
		res.ResponseCode = "409"
		res.ResponseMessage = "Email already registered"
		return res
	}

	now := utils.GetCurrentTime()
	profile := &model.Profile{
		ID:        uuid.NewString(),
		Email:     req.Email,
		FullName:  req.FullName,
		Password:  req.Password,
		Role:      model.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating profile")
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal Server Error"
		return res
	}
	res.Data = profile
	return res
}

func (u *userUsecase) Login(ctx context.Context, req model.ReqLogin) dto.Res {
	var res dto.Res
	res.ResponseCode = "200"
	res.ResponseMessage = "OK"

	profile, err := u.profileRepo.GetByEmail(ctx, req.Email)
	if err != nil || profile == nil || profile.Password != req.Password {
		res.ResponseCode = "401"
		res.ResponseMessage = "Invalid email or password"
		return res
	}

	now := utils.GetCurrentTime()
	claims := model.UserClaims{
		Email: profile.Email,
		Role:  string(profile.Role),
		StandardClaims: jwt.StandardClaims{
			Issuer:    profile.ID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configuration.C.App.SecretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal Server Error"
		return res
	}

	res.Data = map[string]interface{}{
		"access_token": signed,
		"token_type":   "Bearer",
		"expires_in":   int64(24 * time.Hour / time.Second),
		"profile": map[string]interface{}{
			"id":        profile.ID,
			"email":     profile.Email,
			"full_name": profile.FullName,
			"role":      profile.Role,
		},
	}
	return res
}
