package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	FullName string `json:"full_name"`
	Birthday string `json:"birthday"` // sent as YYYY-MM-DD
	Gender   string `json:"gender"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	return map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"birthday":  user.Birthday.Format("2006-01-02"),
		"age":       age,
		"age_group": utils.AgeGroup(age),
		"gender":    user.Gender,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err != nil {
			return errors.New("birthday must be YYYY-MM-DD")
		}
		user.Birthday = birthday
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}

	return config.DB.Save(&user).Error
}

func FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
