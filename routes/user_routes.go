package routes

import (
	"affinity_server/controllers"
	"affinity_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up role persistence routes under /api/users
func RegisterUserRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewUserController(userService)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("/role", controller.HandleSaveRole).Methods("POST")
	userRouter.HandleFunc("/{uid}/role", controller.HandleGetRole).Methods("GET")
}
