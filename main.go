package main

import (
	"log"
	"net/http"
	"os"

	database "github.com/kalviumcommunity/s81-Kausiki-CraveCart/config"
	middleware "github.com/kalviumcommunity/s81-Kausiki-CraveCart/middlewares"
	routes "github.com/kalviumcommunity/s81-Kausiki-CraveCart/routes"

	"github.com/gorilla/mux"
)

func main() {
	// Load environment variables
	database.LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := mux.NewRouter()

	// Public Routes (No Authentication)
	routes.PublicRoutes(router)
	routes.KitchenPublicRoutes(router)
	routes.SubscriptionPublicRoutes(router)

	// Apply Authentication Middleware to Protected Routes
	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication)
	routes.ProtectedRoutes(securedRoutes)
	routes.KitchenProtectedRoutes(securedRoutes)
	routes.OrderProtectedRoutes(securedRoutes)
	routes.SubscriptionProtectedRoutes(securedRoutes)
	routes.FavoriteProtectedRoutes(securedRoutes)
	routes.AdminRoutes(securedRoutes)

	log.Printf("Server running on port %s", port)
	http.ListenAndServe(":"+port, router)
}
