package controllers

import (
	"errors"
	"net/http"

	"microblog/app/auth"
	"microblog/app/repositories"
	"microblog/app/services"
)

// AuthController handles registration and login
type AuthController struct {
	users  *services.UserService
	tokens *auth.TokenManager
}

// NewAuthController creates a new AuthController
func NewAuthController(users *services.UserService, tokens *auth.TokenManager) *AuthController {
	return &AuthController{users: users, tokens: tokens}
}

// Register creates a new user and returns a token bound to its email
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := ac.users.Register(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateEmail):
			sendError(w, http.StatusConflict, "Email already registered")
		case isValidationError(err):
			sendError(w, http.StatusUnprocessableEntity, "Validation failed: "+err.Error())
		default:
			sendError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	ac.issueToken(w, user.Email)
}

// Login verifies credentials and returns a token. An unknown email and
// a wrong password are deliberately indistinguishable.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := ac.users.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendError(w, http.StatusUnauthorized, "Invalid credentials")
		} else {
			sendError(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	ac.issueToken(w, user.Email)
}

func (ac *AuthController) issueToken(w http.ResponseWriter, email string) {
	token, err := ac.tokens.CreateAccessToken(email)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	sendJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
