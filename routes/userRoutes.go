package routes

import (
	controller "github.com/kalviumcommunity/s81-Kausiki-CraveCart/controllers"

	"github.com/gorilla/mux"
)

func PublicRoutes(router *mux.Router) {
	router.HandleFunc("/users/signup", controller.SignUp).Methods("POST")
	router.HandleFunc("/users/login", controller.Login).Methods("POST")
	router.HandleFunc("/users/forgot-password", controller.ForgotPassword).Methods("POST")
	router.HandleFunc("/users/reset-password", controller.ResetPassword).Methods("POST")
	router.HandleFunc("/users/all-users", controller.GetUsers).Methods("GET")
}

func ProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/users/me", controller.GetMe).Methods("GET")
}
