package routes

import (
	"net/http"

	controller "github.com/kalviumcommunity/s81-Kausiki-CraveCart/controllers"

	"github.com/gorilla/mux"
)

func FavoriteProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/favorites/my", controller.GetFavorites).Methods(http.MethodGet)
	router.HandleFunc("/favorites/{kitchen_id}/toggle", controller.ToggleFavorite).Methods(http.MethodPost)
}
