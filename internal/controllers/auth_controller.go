package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/andrewbantly/leasepeek-server/internal/dtos"
	"github.com/andrewbantly/leasepeek-server/internal/services"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

var validate = validator.New()

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid registration fields", nil, err,
		)
		return
	}

	user, pair, err := c.authService.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidEmail):
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid email address", nil,
			)
		case errors.Is(err, utils.ErrWeakPassword):
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation, "Password does not meet requirements", nil,
			)
		case errors.Is(err, utils.ErrEmailExists):
			utils.RespondErrorWithCode(
				w, http.StatusConflict, utils.ErrCodeConflict, "Email already registered", nil,
			)
		default:
			utils.RespondErrorWithCode(
				w, http.StatusInternalServerError, utils.ErrCodeInternal, "Registration failed", nil, err,
			)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.AuthResponse{
		Refresh:  pair.Refresh,
		Access:   pair.Access,
		Username: user.Username,
		Email:    user.Email,
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid login fields", nil, err,
		)
		return
	}

	user, pair, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil,
			)
			return
		}
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Login failed", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.AuthResponse{
		Refresh:  pair.Refresh,
		Access:   pair.Access,
		Username: user.Username,
		Email:    user.Email,
	})
}
