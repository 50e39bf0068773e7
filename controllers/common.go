package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/helper"
	middleware "github.com/kalviumcommunity/s81-Kausiki-CraveCart/middlewares"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/services"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, payload map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// serviceErrorStatus maps booking-core errors onto the HTTP taxonomy.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrKitchenNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrVerificationRequired):
		return http.StatusForbidden
	case errors.Is(err, services.ErrMealUnavailable),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidMealType),
		errors.Is(err, services.ErrInvalidPayment),
		errors.Is(err, helper.ErrInvalidDateFormat):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := serviceErrorStatus(err)
	if status == http.StatusInternalServerError {
		writeError(w, status, "Internal server error")
		return
	}
	writeError(w, status, err.Error())
}

// requestUserID returns the authenticated user's ObjectID from the request
// context.
func requestUserID(r *http.Request) (primitive.ObjectID, bool) {
	_, _, uid := middleware.GetUserFromContext(r)
	id, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
