package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/kalviumcommunity/s81-Kausiki-CraveCart/config"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/helper"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
)

var kitchenCollection *mongo.Collection = database.OpenCollection(database.Client, "kitchen")
var mealCollection *mongo.Collection = database.OpenCollection(database.Client, "meal")
var ratingCollection *mongo.Collection = database.OpenCollection(database.Client, "rating")

var (
	fssaiLicenseRe = regexp.MustCompile(`^\d{14}$`)
	pincodeRe      = regexp.MustCompile(`^\d{4,10}$`)
)

type kitchenWithStats struct {
	models.Kitchen
	Avg_rating   float64 `json:"avg_rating"`
	Rating_count int     `json:"rating_count"`
}

type ratingStats struct {
	ID          primitive.ObjectID `bson:"_id"`
	AvgRating   float64            `bson:"avg_rating"`
	RatingCount int                `bson:"rating_count"`
}

// myKitchen resolves the caller's kitchen; ownership is enforced by querying
// on owner_user_id rather than by role.
func myKitchen(ctx context.Context, r *http.Request) (*models.Kitchen, bool) {
	userID, ok := requestUserID(r)
	if !ok {
		return nil, false
	}
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOne(ctx, bson.M{"owner_user_id": userID}).Decode(&kitchen); err != nil {
		return nil, false
	}
	return &kitchen, true
}

func ratingStatsFor(ctx context.Context, kitchenIDs []primitive.ObjectID) map[primitive.ObjectID]ratingStats {
	stats := map[primitive.ObjectID]ratingStats{}

	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "kitchen_id", Value: bson.M{"$in": kitchenIDs}}}}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$kitchen_id"},
		{Key: "avg_rating", Value: bson.M{"$avg": "$rating"}},
		{Key: "rating_count", Value: bson.M{"$sum": 1}},
	}}}

	cursor, err := ratingCollection.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
	if err != nil {
		return stats
	}
	defer cursor.Close(ctx)

	var results []ratingStats
	if err := cursor.All(ctx, &results); err != nil {
		return stats
	}
	for _, s := range results {
		stats[s.ID] = s
	}
	return stats
}

// Browse kitchens: active, and verified unless ?verified=false
func GetKitchens(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{"is_active": true}
	if r.URL.Query().Get("verified") != "false" {
		filter["verified"] = true
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := kitchenCollection.Find(ctx, filter, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving kitchens")
		return
	}
	defer cursor.Close(ctx)

	var kitchens []models.Kitchen
	if err := cursor.All(ctx, &kitchens); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding kitchen data")
		return
	}

	ids := make([]primitive.ObjectID, 0, len(kitchens))
	for _, k := range kitchens {
		ids = append(ids, k.ID)
	}
	stats := ratingStatsFor(ctx, ids)

	result := make([]kitchenWithStats, 0, len(kitchens))
	for _, k := range kitchens {
		s := stats[k.ID]
		result = append(result, kitchenWithStats{Kitchen: k, Avg_rating: s.AvgRating, Rating_count: s.RatingCount})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Kitchens retrieved successfully",
		"data":    result,
	})
}

// Kitchen details with rating stats
func GetKitchenByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchenID, err := primitive.ObjectIDFromHex(mux.Vars(r)["kitchen_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
		return
	}

	var kitchen models.Kitchen
	if err := kitchenCollection.FindOne(ctx, bson.M{"_id": kitchenID}).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}

	s := ratingStatsFor(ctx, []primitive.ObjectID{kitchen.ID})[kitchen.ID]

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Kitchen retrieved successfully",
		"data":    kitchenWithStats{Kitchen: kitchen, Avg_rating: s.AvgRating, Rating_count: s.RatingCount},
	})
}

// Real-time availability for a kitchen on a given date
func GetKitchenAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchenID, err := primitive.ObjectIDFromHex(mux.Vars(r)["kitchen_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
		return
	}

	day, err := helper.ParseDateOnlyUTC(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := kitchenCollection.CountDocuments(ctx, bson.M{"_id": kitchenID})
	if err != nil || count == 0 {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "meal_type", Value: 1}})
	cursor, err := mealCollection.Find(ctx, bson.M{"kitchen_id": kitchenID, "date": day}, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving meals")
		return
	}
	defer cursor.Close(ctx)

	var meals []models.Meal
	if err := cursor.All(ctx, &meals); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding meal data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Availability retrieved successfully",
		"date":    day,
		"data":    meals,
	})
}

// Add or update the caller's rating for a kitchen (one per user per kitchen)
func RateKitchen(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchenID, err := primitive.ObjectIDFromHex(mux.Vars(r)["kitchen_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
		return
	}

	var body struct {
		Rating   int    `json:"rating"`
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Rating < 1 || body.Rating > 5 {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	count, err := kitchenCollection.CountDocuments(ctx, bson.M{"_id": kitchenID})
	if err != nil || count == 0 {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	now := time.Now()
	newID := primitive.NewObjectID()
	update := bson.M{
		"$set": bson.M{
			"rating":     body.Rating,
			"feedback":   body.Feedback,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        newID,
			"rating_id":  newID.Hex(),
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var rating models.Rating
	if err := ratingCollection.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID, "kitchen_id": kitchenID}, update, opts).Decode(&rating); err != nil {
		writeError(w, http.StatusInternalServerError, "Rating update failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Rating saved successfully",
		"data":    rating,
	})
}

// Register a kitchen for the authenticated user; starts pending verification
func RegisterKitchen(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		AddressText string `json:"address_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	count, err := kitchenCollection.CountDocuments(ctx, bson.M{"owner_user_id": userID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error checking existing kitchens")
		return
	}
	if count > 0 {
		writeError(w, http.StatusConflict, "Kitchen already registered for this account")
		return
	}

	now := time.Now()
	kitchen := models.Kitchen{
		ID:                          primitive.NewObjectID(),
		Owner_user_id:               userID,
		Name:                        &body.Name,
		Description:                 body.Description,
		Address_text:                body.AddressText,
		Verified:                    false,
		Verification_status:         models.VerificationPending,
		Pincode_verification_status: models.VerificationPending,
		Daily_order_limit:           50,
		Is_active:                   true,
		Fssai:                       models.Fssai{Validation_status: models.VerificationPending},
		Video_call:                  models.VideoCall{Status: models.VideoCallNotRequested},
		Premium_verification:        models.PremiumVerification{Trial_order_status: models.TrialOrderNotRequested},
		Created_at:                  now,
		Updated_at:                  now,
	}
	kitchen.Kitchen_id = kitchen.ID.Hex()

	if _, err := kitchenCollection.InsertOne(ctx, kitchen); err != nil {
		writeError(w, http.StatusInternalServerError, "Kitchen registration failed")
		return
	}

	// Owning a kitchen changes the role; reconcile and hand back a fresh token
	// so the client does not keep a stale claim.
	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving user")
		return
	}
	role := reconcileRole(ctx, &user)
	token, err := helper.GenerateAccessToken(*user.Email, role, user.User_id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Token generation failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Kitchen registered successfully",
		"token":   token,
		"data":    kitchen,
	})
}

// Submit FSSAI and identity details for verification
func SubmitKitchenVerification(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchen, ok := myKitchen(ctx, r)
	if !ok {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}

	var body struct {
		FssaiLicenseNumber string `json:"fssai_license_number"`
		FssaiBusinessName  string `json:"fssai_business_name"`
		FssaiExpiryDate    string `json:"fssai_expiry_date"`
		GovernmentIDType   string `json:"government_id_type"`
		NameOnID           string `json:"name_on_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.FssaiLicenseNumber == "" {
		writeError(w, http.StatusBadRequest, "FSSAI License Number is required")
		return
	}
	if !fssaiLicenseRe.MatchString(body.FssaiLicenseNumber) {
		writeError(w, http.StatusBadRequest, "FSSAI License Number must be 14 digits")
		return
	}
	if body.FssaiExpiryDate == "" {
		writeError(w, http.StatusBadRequest, "FSSAI Expiry Date is required")
		return
	}
	expiry, err := time.Parse("2006-01-02", body.FssaiExpiryDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid FSSAI Expiry Date")
		return
	}
	if expiry.Before(time.Now()) {
		writeError(w, http.StatusBadRequest, "FSSAI License is expired")
		return
	}
	if body.GovernmentIDType == "" {
		writeError(w, http.StatusBadRequest, "Government ID type is required")
		return
	}
	if body.NameOnID == "" {
		writeError(w, http.StatusBadRequest, "Name on ID is required")
		return
	}

	update := bson.M{"$set": bson.M{
		"fssai.license_number":         body.FssaiLicenseNumber,
		"fssai.business_name":          body.FssaiBusinessName,
		"fssai.expiry_date":            expiry,
		"fssai.validation_status":      models.VerificationPending,
		"verification_status":          models.VerificationPending,
		"verification_rejected_reason": "",
		"verified":                     false,
		"updated_at":                   time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx, bson.M{"_id": kitchen.ID}, update, opts).Decode(&updated); err != nil {
		writeError(w, http.StatusInternalServerError, "Verification submission failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Verification details submitted successfully",
		"data":    updated,
	})
}

// Set service pincode; pincode self-verifies on submission
func UpdateKitchenLocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		Pincode     string  `json:"pincode"`
		AddressText *string `json:"address_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Pincode == "" {
		writeError(w, http.StatusBadRequest, "pincode is required")
		return
	}
	if !pincodeRe.MatchString(body.Pincode) {
		writeError(w, http.StatusBadRequest, "pincode must be 4-10 digits")
		return
	}

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	set := bson.M{
		"pincode":                     body.Pincode,
		"pincode_verification_status": models.VerificationVerified,
		"updated_at":                  time.Now(),
	}
	if body.AddressText != nil {
		set["address_text"] = *body.AddressText
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx,
		bson.M{"owner_user_id": userID}, bson.M{"$set": set}, opts).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Location updated successfully",
		"data":    kitchen,
	})
}

// Request a verification video call
func RequestVideoCall(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		PreferredSlotText string `json:"preferred_slot_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PreferredSlotText == "" {
		writeError(w, http.StatusBadRequest, "preferred_slot_text is required")
		return
	}

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx,
		bson.M{"owner_user_id": userID},
		bson.M{"$set": bson.M{
			"video_call.status":              models.VideoCallRequested,
			"video_call.preferred_slot_text": body.PreferredSlotText,
			"updated_at":                     time.Now(),
		}}, opts).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Video call requested successfully",
		"data":    kitchen,
	})
}

// Request a premium verification trial order
func RequestTrialOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		Notes string `json:"notes"`
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

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx,
		bson.M{"owner_user_id": userID},
		bson.M{"$set": bson.M{
			"premium_verification.trial_order_status": models.TrialOrderRequested,
			"premium_verification.notes":              body.Notes,
			"updated_at":                              time.Now(),
		}}, opts).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Trial order requested successfully",
		"data":    kitchen,
	})
}

// Get the caller's kitchen profile
func GetMyKitchenProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchen, ok := myKitchen(ctx, r)
	if !ok {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}

	mealCount, err := mealCollection.CountDocuments(ctx, bson.M{"kitchen_id": kitchen.ID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error checking menu items")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        "Kitchen profile retrieved successfully",
		"data":           kitchen,
		"has_menu_items": mealCount > 0,
	})
}

// Set the per-day ceiling on non-cancelled orders
func SetDailyOrderLimit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		DailyOrderLimit *int `json:"daily_order_limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.DailyOrderLimit == nil {
		writeError(w, http.StatusBadRequest, "daily_order_limit is required")
		return
	}
	if *body.DailyOrderLimit < 0 {
		writeError(w, http.StatusBadRequest, "daily_order_limit must be >= 0")
		return
	}

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx,
		bson.M{"owner_user_id": userID},
		bson.M{"$set": bson.M{"daily_order_limit": *body.DailyOrderLimit, "updated_at": time.Now()}},
		opts).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Daily order limit updated successfully",
		"data":    kitchen,
	})
}

// Create or update a meal slot; one offering per (kitchen, date, meal type)
func UpsertMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		Date        string   `json:"date"`
		MealType    string   `json:"meal_type"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		ImageURL    string   `json:"image_url"`
		Price       *float64 `json:"price"`
		TotalQty    *int     `json:"total_qty"`
		IsAvailable *bool    `json:"is_available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.Date == "" || body.MealType == "" || body.Title == "" || body.Price == nil || body.TotalQty == nil {
		writeError(w, http.StatusBadRequest, "date, meal_type, title, price, total_qty are required")
		return
	}
	if !models.ValidMealType(body.MealType) {
		writeError(w, http.StatusBadRequest, "meal_type must be breakfast, lunch, snacks, or dinner")
		return
	}
	if *body.Price < 0 || *body.TotalQty < 0 {
		writeError(w, http.StatusBadRequest, "price and total_qty must be >= 0")
		return
	}

	day, err := helper.ParseDateOnlyUTC(body.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	kitchen, ok := myKitchen(ctx, r)
	if !ok {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}
	if !kitchen.Verified {
		writeError(w, http.StatusForbidden, "Kitchen verification pending. Menu management is locked")
		return
	}

	isAvailable := true
	if body.IsAvailable != nil {
		isAvailable = *body.IsAvailable
	}

	now := time.Now()
	newID := primitive.NewObjectID()
	update := bson.M{
		"$set": bson.M{
			"title":        body.Title,
			"description":  body.Description,
			"image_url":    body.ImageURL,
			"price":        *body.Price,
			"total_qty":    *body.TotalQty,
			"is_available": isAvailable,
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"_id":        newID,
			"meal_id":    newID.Hex(),
			"sold_qty":   0,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var meal models.Meal
	if err := mealCollection.FindOneAndUpdate(ctx,
		bson.M{"kitchen_id": kitchen.ID, "date": day, "meal_type": body.MealType},
		update, opts).Decode(&meal); err != nil {
		writeError(w, http.StatusInternalServerError, "Meal save failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Meal saved successfully",
		"data":    meal,
	})
}

// List the caller's meal slots for a date
func GetMyMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	day, err := helper.ParseDateOnlyUTC(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	kitchen, ok := myKitchen(ctx, r)
	if !ok {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}
	if !kitchen.Verified {
		writeError(w, http.StatusForbidden, "Kitchen verification pending. Menu management is locked")
		return
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "meal_type", Value: 1}, {Key: "created_at", Value: -1}})
	cursor, err := mealCollection.Find(ctx, bson.M{"kitchen_id": kitchen.ID, "date": day}, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving meals")
		return
	}
	defer cursor.Close(ctx)

	var meals []models.Meal
	if err := cursor.All(ctx, &meals); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding meal data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Meals retrieved successfully",
		"date":    day,
		"data":    meals,
	})
}

// Pre-order dashboard for the caller's kitchen
func GetKitchenOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	day, err := helper.ParseDateOnlyUTC(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	kitchen, ok := myKitchen(ctx, r)
	if !ok {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}
	if !kitchen.Verified {
		writeError(w, http.StatusForbidden, "Kitchen verification pending. Orders dashboard is locked")
		return
	}

	filter := bson.M{
		"kitchen_id": kitchen.ID,
		"date":       day,
		"status":     bson.M{"$in": bson.A{models.OrderPrebooked, models.OrderAccepted, models.OrderRejected}},
	}
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := orderCollection.Find(ctx, filter, findOpts)
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
		"date":    day,
		"data":    orders,
	})
}

// Accept or reject a prebooked order
func DecideOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(mux.Vars(r)["order_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var body struct {
		Decision string `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Decision != "accept" && body.Decision != "reject" {
		writeError(w, http.StatusBadRequest, "decision must be 'accept' or 'reject'")
		return
	}

	kitchen, ok := myKitchen(ctx, r)
	if !ok {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}

	order, err := bookingService.Decide(ctx, kitchen, orderID, body.Decision)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Order " + order.Status + " successfully",
		"data":    order,
	})
}

// Demand analytics: orders and quantity grouped by day and meal type
func GetKitchenAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 1 {
		days = 30
	}
	if days > 90 {
		days = 90
	}

	kitchen, ok := myKitchen(ctx, r)
	if !ok {
		writeError(w, http.StatusNotFound, "Kitchen not found for this account")
		return
	}

	since := time.Now().Add(-time.Duration(days) * 24 * time.Hour)

	matchStage := bson.D{{Key: "$match", Value: bson.D{
		{Key: "kitchen_id", Value: kitchen.ID},
		{Key: "created_at", Value: bson.M{"$gte": since}},
		{Key: "status", Value: bson.M{"$ne": models.OrderCancelled}},
	}}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: bson.D{
			{Key: "day", Value: bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$date"}}},
			{Key: "meal_type", Value: "$meal_type"},
		}},
		{Key: "orders", Value: bson.M{"$sum": 1}},
		{Key: "qty", Value: bson.M{"$sum": "$qty"}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "_id.day", Value: 1}}}}

	cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage, sortStage})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error computing analytics")
		return
	}
	defer cursor.Close(ctx)

	var demand []bson.M
	if err := cursor.All(ctx, &demand); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding analytics data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Analytics retrieved successfully",
		"days":    days,
		"data":    demand,
	})
}
