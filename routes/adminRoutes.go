package routes

import (
	"net/http"

	controller "github.com/kalviumcommunity/s81-Kausiki-CraveCart/controllers"
	middleware "github.com/kalviumcommunity/s81-Kausiki-CraveCart/middlewares"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"

	"github.com/gorilla/mux"
)

// AdminRoutes mounts the admin surface behind the admin role and the email
// allow-list. Both checks must pass.
func AdminRoutes(router *mux.Router) {
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.Use(controller.AdminEmailGuard)

	admin.HandleFunc("/summary", controller.GetAdminSummary).Methods(http.MethodGet)

	admin.HandleFunc("/users", controller.GetUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{user_id}/status", controller.SetUserStatus).Methods(http.MethodPatch)

	admin.HandleFunc("/kitchens", controller.AdminListKitchens).Methods(http.MethodGet)
	admin.HandleFunc("/kitchens/pending", controller.PendingKitchens).Methods(http.MethodGet)
	admin.HandleFunc("/kitchens/{kitchen_id}", controller.AdminGetKitchenDetail).Methods(http.MethodGet)
	admin.HandleFunc("/kitchens/{kitchen_id}/decision", controller.KitchenDecision).Methods(http.MethodPatch)
	admin.HandleFunc("/kitchens/{kitchen_id}/fssai", controller.SetFssaiStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/kitchens/{kitchen_id}/location-decision", controller.LocationDecision).Methods(http.MethodPatch)
	admin.HandleFunc("/kitchens/{kitchen_id}/video-call/schedule", controller.ScheduleVideoCall).Methods(http.MethodPatch)
	admin.HandleFunc("/kitchens/{kitchen_id}/premium-trial", controller.SetPremiumTrial).Methods(http.MethodPatch)
	admin.HandleFunc("/kitchens/{kitchen_id}/suspend", controller.SuspendKitchen).Methods(http.MethodPatch)

	admin.HandleFunc("/orders", controller.AdminListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/menus", controller.AdminListMenus).Methods(http.MethodGet)
	admin.HandleFunc("/reviews", controller.AdminListReviews).Methods(http.MethodGet)

	admin.HandleFunc("/complaints", controller.ListComplaints).Methods(http.MethodGet)
	admin.HandleFunc("/complaints", controller.CreateComplaint).Methods(http.MethodPost)
	admin.HandleFunc("/complaints/{complaint_id}/status", controller.UpdateComplaint).Methods(http.MethodPatch)

	admin.HandleFunc("/announcements", controller.ListAnnouncements).Methods(http.MethodGet)
	admin.HandleFunc("/announcements", controller.CreateAnnouncement).Methods(http.MethodPost)
	admin.HandleFunc("/announcements/{announcement_id}", controller.UpdateAnnouncement).Methods(http.MethodPatch)

	admin.HandleFunc("/settings", controller.ListSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{key}", controller.PutSetting).Methods(http.MethodPut)
}
