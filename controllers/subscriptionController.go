package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/kalviumcommunity/s81-Kausiki-CraveCart/config"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
)

var planCollection *mongo.Collection = database.OpenCollection(database.Client, "subscription_plan")
var userSubCollection *mongo.Collection = database.OpenCollection(database.Client, "user_subscription")

type planSeed struct {
	planType    string
	mealsPerDay int
	price       float64
}

var defaultPlans = []planSeed{
	{models.PlanWeekly, 1, 999},
	{models.PlanWeekly, 2, 1799},
	{models.PlanWeekly, 3, 2499},
	{models.PlanMonthly, 1, 3499},
	{models.PlanMonthly, 2, 6499},
	{models.PlanMonthly, 3, 8999},
}

// seedDefaultPlans inserts the catalog on first use. Upserts keyed on
// (plan_type, meals_per_day) keep concurrent seeding idempotent.
func seedDefaultPlans(ctx context.Context) error {
	count, err := planCollection.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return err
	}

	now := time.Now()
	for _, p := range defaultPlans {
		newID := primitive.NewObjectID()
		update := bson.M{"$setOnInsert": bson.M{
			"_id":        newID,
			"plan_id":    newID.Hex(),
			"price":      p.price,
			"is_active":  true,
			"created_at": now,
			"updated_at": now,
		}}
		opts := options.Update().SetUpsert(true)
		if _, err := planCollection.UpdateOne(ctx,
			bson.M{"plan_type": p.planType, "meals_per_day": p.mealsPerDay},
			update, opts); err != nil {
			return err
		}
	}
	return nil
}

// Subscription plan catalog (seeds defaults on first call)
func GetPlans(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	if err := seedDefaultPlans(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Error preparing subscription plans")
		return
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "plan_type", Value: 1}, {Key: "meals_per_day", Value: 1}})
	cursor, err := planCollection.Find(ctx, bson.M{"is_active": true}, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving plans")
		return
	}
	defer cursor.Close(ctx)

	var plans []models.SubscriptionPlan
	if err := cursor.All(ctx, &plans); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding plan data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Plans retrieved successfully",
		"data":    plans,
	})
}

// Subscribe the caller to a plan; the window runs 7 days for weekly plans
// and 30 for monthly.
func Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		PlanID string `json:"plan_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PlanID == "" {
		writeError(w, http.StatusBadRequest, "plan_id is required")
		return
	}

	planID, err := primitive.ObjectIDFromHex(body.PlanID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	var plan models.SubscriptionPlan
	if err := planCollection.FindOne(ctx, bson.M{"_id": planID, "is_active": true}).Decode(&plan); err != nil {
		writeError(w, http.StatusNotFound, "Plan not found")
		return
	}

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	now := time.Now()
	duration := 30
	if plan.Plan_type == models.PlanWeekly {
		duration = 7
	}

	sub := models.UserSubscription{
		ID:         primitive.NewObjectID(),
		User_id:    userID,
		Plan_id:    plan.ID,
		Start_date: now,
		End_date:   now.AddDate(0, 0, duration),
		Status:     models.SubscriptionActive,
		Created_at: now,
		Updated_at: now,
	}
	sub.Subscription_id = sub.ID.Hex()

	if _, err := userSubCollection.InsertOne(ctx, sub); err != nil {
		writeError(w, http.StatusInternalServerError, "Subscription creation failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Subscribed successfully",
		"data": map[string]interface{}{
			"subscription": sub,
			"plan":         plan,
		},
	})
}

// The caller's subscriptions, newest first
func GetMySubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := userSubCollection.Find(ctx, bson.M{"user_id": userID}, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving subscriptions")
		return
	}
	defer cursor.Close(ctx)

	var subs []models.UserSubscription
	if err := cursor.All(ctx, &subs); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding subscription data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Subscriptions retrieved successfully",
		"data":    subs,
	})
}
