package services

import (
	"errors"

	"github.com/qashsolutions/myhealthguide-sub011/config"
	"github.com/qashsolutions/myhealthguide-sub011/models"
	"github.com/qashsolutions/myhealthguide-sub011/utils"
)

func RegisterUser(email, password, fullName, phone string) (*models.User, string, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:       email,
		Password:    hashedPassword,
		FullName:    fullName,
		PhoneNumber: phone,
		Role:        "caregiver",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func AuthenticateUser(email, password string) (*models.User, string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
