package routes

import (
	"net/http"

	controller "github.com/kalviumcommunity/s81-Kausiki-CraveCart/controllers"

	"github.com/gorilla/mux"
)

func SubscriptionPublicRoutes(router *mux.Router) {
	router.HandleFunc("/subscriptions/plans", controller.GetPlans).Methods(http.MethodGet)
}

func SubscriptionProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/subscriptions/subscribe", controller.Subscribe).Methods(http.MethodPost)
	router.HandleFunc("/subscriptions/my", controller.GetMySubscriptions).Methods(http.MethodGet)
}
