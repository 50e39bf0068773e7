package routes

import (
	"net/http"

	controller "github.com/kalviumcommunity/s81-Kausiki-CraveCart/controllers"

	"github.com/gorilla/mux"
)

func OrderProtectedRoutes(router *mux.Router) {

	router.HandleFunc("/orders/prebook", controller.PrebookOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/my", controller.GetMyOrders).Methods(http.MethodGet)

	router.HandleFunc("/orders/{order_id}/cancel", controller.CancelOrder).Methods(http.MethodPatch)
	router.HandleFunc("/orders/{order_id}/payment-method", controller.SetOrderPaymentMethod).Methods(http.MethodPatch)
}
