package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/kalviumcommunity/s81-Kausiki-CraveCart/config"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/helper"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/repository"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/services"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

var bookingService = services.NewBookingService(
	repository.NewMealRepo(mealCollection),
	repository.NewOrderRepo(orderCollection),
	repository.NewKitchenRepo(kitchenCollection),
)

// Pre-book a meal: capacity gate, atomic reservation, then order creation.
func PrebookOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		KitchenID     string `json:"kitchen_id"`
		Date          string `json:"date"`
		MealType      string `json:"meal_type"`
		Qty           int    `json:"qty"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.KitchenID == "" || body.Date == "" || body.MealType == "" || body.Qty == 0 {
		writeError(w, http.StatusBadRequest, "kitchen_id, date, meal_type, qty are required")
		return
	}

	kitchenID, err := primitive.ObjectIDFromHex(body.KitchenID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
		return
	}

	day, err := helper.ParseDateOnlyUTC(body.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	order, meal, err := bookingService.Prebook(ctx, userID, kitchenID, day, body.MealType, body.Qty, body.PaymentMethod)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Order prebooked successfully",
		"data": map[string]interface{}{
			"order": order,
			"meal":  meal,
		},
	})
}

// Get the authenticated customer's orders, newest first
func GetMyOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := orderCollection.Find(ctx, bson.M{"user_id": userID}, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving orders")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding order data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// Cancel a prebooked order and release its reserved quantity
func CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(mux.Vars(r)["order_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	order, err := bookingService.Cancel(ctx, orderID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Order cancelled successfully",
		"data":    order,
	})
}

// Set the payment method on a still-prebooked order
func SetOrderPaymentMethod(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(mux.Vars(r)["order_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var body struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	order, err := bookingService.SetPaymentMethod(ctx, orderID, userID, body.PaymentMethod)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Payment method updated successfully",
		"data":    order,
	})
}
