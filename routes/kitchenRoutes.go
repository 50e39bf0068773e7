package routes

import (
	"net/http"

	controller "github.com/kalviumcommunity/s81-Kausiki-CraveCart/controllers"

	"github.com/gorilla/mux"
)

func KitchenPublicRoutes(router *mux.Router) {
	router.HandleFunc("/kitchens", controller.GetKitchens).Methods(http.MethodGet)
	router.HandleFunc("/kitchens/{kitchen_id}", controller.GetKitchenByID).Methods(http.MethodGet)
	router.HandleFunc("/kitchens/{kitchen_id}/availability", controller.GetKitchenAvailability).Methods(http.MethodGet)
}

func KitchenProtectedRoutes(router *mux.Router) {

	// customer actions
	router.HandleFunc("/kitchens/{kitchen_id}/rating", controller.RateKitchen).Methods(http.MethodPost)

	// kitchen owner onboarding and verification
	router.HandleFunc("/kitchens/register", controller.RegisterKitchen).Methods(http.MethodPost)
	router.HandleFunc("/kitchens/my/verification", controller.SubmitKitchenVerification).Methods(http.MethodPost)
	router.HandleFunc("/kitchens/my/location", controller.UpdateKitchenLocation).Methods(http.MethodPatch)
	router.HandleFunc("/kitchens/my/video-call/request", controller.RequestVideoCall).Methods(http.MethodPost)
	router.HandleFunc("/kitchens/my/premium-verification/trial-order", controller.RequestTrialOrder).Methods(http.MethodPost)

	// kitchen owner daily operations
	router.HandleFunc("/kitchens/my/profile", controller.GetMyKitchenProfile).Methods(http.MethodGet)
	router.HandleFunc("/kitchens/my/daily-order-limit", controller.SetDailyOrderLimit).Methods(http.MethodPatch)
	router.HandleFunc("/kitchens/my/meals", controller.UpsertMeal).Methods(http.MethodPost)
	router.HandleFunc("/kitchens/my/meals", controller.GetMyMeals).Methods(http.MethodGet)
	router.HandleFunc("/kitchens/my/orders", controller.GetKitchenOrders).Methods(http.MethodGet)
	router.HandleFunc("/kitchens/my/orders/{order_id}/decision", controller.DecideOrder).Methods(http.MethodPatch)
	router.HandleFunc("/kitchens/my/analytics", controller.GetKitchenAnalytics).Methods(http.MethodGet)
}
