package utils

import (
	"strings"
	"vitalis-service/internal/pkg/dto/requests"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}
