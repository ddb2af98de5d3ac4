package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"microblog/app/repositories"
	"microblog/app/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for users
type UserController struct {
	users *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// Index handles listing all users
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := uc.users.ListUsers()
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	sendJSON(w, http.StatusOK, newUserResponses(users))
}

// Show handles displaying a single user
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := uc.users.GetUser(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "User not found")
		} else {
			sendError(w, http.StatusInternalServerError, "Failed to fetch user")
		}
		return
	}
	sendJSON(w, http.StatusOK, newUserResponse(user))
}

// Delete handles deleting a user
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := uc.users.DeleteUser(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "User not found")
		} else {
			sendError(w, http.StatusInternalServerError, "Failed to delete user")
		}
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
