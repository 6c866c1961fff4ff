package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"affinity_server/models"
	"affinity_server/services"

	"github.com/gorilla/mux"
)

// UserController handles role persistence for authenticated users
type UserController struct {
	UserService *services.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{UserService: userService}
}

// HandleSaveRole upserts a (uid, role, email) binding
func (uc *UserController) HandleSaveRole(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UID   string `json:"uid"`
		Role  string `json:"role"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UID == "" || request.Role == "" {
		http.Error(w, "UID and Role are required", http.StatusBadRequest)
		return
	}

	role := models.Role(request.Role)
	if !role.Valid() {
		http.Error(w, "Role must be 'admin' or 'customer'", http.StatusBadRequest)
		return
	}

	if err := uc.UserService.SaveUserRole(r.Context(), request.UID, role, request.Email); err != nil {
		log.Println("Error saving role:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Role saved"})
}

// HandleGetRole returns the stored role for a uid
func (uc *UserController) HandleGetRole(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	if uid == "" {
		http.Error(w, "uid is required", http.StatusBadRequest)
		return
	}

	role, err := uc.UserService.GetUserRole(r.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Println("Error fetching role:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"uid": uid, "role": string(role)})
}
