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
	middleware "github.com/kalviumcommunity/s81-Kausiki-CraveCart/middlewares"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
)

var complaintCollection *mongo.Collection = database.OpenCollection(database.Client, "complaint")
var announcementCollection *mongo.Collection = database.OpenCollection(database.Client, "announcement")
var settingCollection *mongo.Collection = database.OpenCollection(database.Client, "setting")

// AdminEmailGuard rejects callers whose email is not on the admin allow-list,
// even if their token carries the admin role.
func AdminEmailGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _, _ := middleware.GetUserFromContext(r)
		if !helper.IsAdminEmail(email) {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Platform-wide counts for the admin dashboard
func GetAdminSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	userCount, _ := userCollection.CountDocuments(ctx, bson.M{})
	kitchenCount, _ := kitchenCollection.CountDocuments(ctx, bson.M{})
	pendingKitchens, _ := kitchenCollection.CountDocuments(ctx, bson.M{"verification_status": models.VerificationPending})
	verifiedKitchens, _ := kitchenCollection.CountDocuments(ctx, bson.M{"verified": true})
	orderCount, _ := orderCollection.CountDocuments(ctx, bson.M{})
	prebookedOrders, _ := orderCollection.CountDocuments(ctx, bson.M{"status": models.OrderPrebooked})
	openComplaints, _ := complaintCollection.CountDocuments(ctx, bson.M{"status": models.ComplaintOpen})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Summary retrieved successfully",
		"data": map[string]interface{}{
			"users":             userCount,
			"kitchens":          kitchenCount,
			"pending_kitchens":  pendingKitchens,
			"verified_kitchens": verifiedKitchens,
			"orders":            orderCount,
			"prebooked_orders":  prebookedOrders,
			"open_complaints":   openComplaints,
		},
	})
}

// Activate or deactivate a user account
func SetUserStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["user_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var body struct {
		IsActivated *bool `json:"is_activated"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.IsActivated == nil {
		writeError(w, http.StatusBadRequest, "is_activated is required")
		return
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})
	var user models.User
	if err := userCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"is_activated": *body.IsActivated, "updated_at": time.Now()}},
		opts).Decode(&user); err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User status updated successfully",
		"data":    user,
	})
}

// All kitchens, optionally filtered by verification status
func AdminListKitchens(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["verification_status"] = status
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

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Kitchens retrieved successfully",
		"count":   len(kitchens),
		"data":    kitchens,
	})
}

// Verification queue: kitchens awaiting a decision
func PendingKitchens(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := kitchenCollection.Find(ctx,
		bson.M{"verification_status": models.VerificationPending}, findOpts)
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

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Pending kitchens retrieved successfully",
		"count":   len(kitchens),
		"data":    kitchens,
	})
}

// Kitchen detail with its owner for the review screen
func AdminGetKitchenDetail(w http.ResponseWriter, r *http.Request) {
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

	var owner models.User
	findOpts := options.FindOne().SetProjection(bson.M{"password": 0})
	userCollection.FindOne(ctx, bson.M{"_id": kitchen.Owner_user_id}, findOpts).Decode(&owner)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Kitchen retrieved successfully",
		"data": map[string]interface{}{
			"kitchen": kitchen,
			"owner":   owner,
		},
	})
}

// Final verification decision; rejection requires a reason
func KitchenDecision(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchenID, err := primitive.ObjectIDFromHex(mux.Vars(r)["kitchen_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
		return
	}

	var body struct {
		Decision string `json:"decision"`
		Reason   string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	now := time.Now()
	var update bson.M
	switch body.Decision {
	case models.VerificationVerified:
		update = bson.M{"$set": bson.M{
			"verified":                     true,
			"verification_status":          models.VerificationVerified,
			"verification_rejected_reason": "",
			"verified_badge":               true,
			"verified_at":                  now,
			"fssai.validation_status":      models.VerificationVerified,
			"updated_at":                   now,
		}}
	case models.VerificationRejected:
		if body.Reason == "" {
			writeError(w, http.StatusBadRequest, "reason is required when rejecting")
			return
		}
		update = bson.M{"$set": bson.M{
			"verified":                     false,
			"verification_status":          models.VerificationRejected,
			"verification_rejected_reason": body.Reason,
			"verified_badge":               false,
			"updated_at":                   now,
		}}
	default:
		writeError(w, http.StatusBadRequest, "decision must be 'verified' or 'rejected'")
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx, bson.M{"_id": kitchenID}, update, opts).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Kitchen " + body.Decision + " successfully",
		"data":    kitchen,
	})
}

// Validate or reject the submitted FSSAI license
func SetFssaiStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchenID, err := primitive.ObjectIDFromHex(mux.Vars(r)["kitchen_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
		return
	}

	var body struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Status != models.VerificationVerified && body.Status != models.VerificationRejected && body.Status != models.VerificationPending {
		writeError(w, http.StatusBadRequest, "status must be pending, verified, or rejected")
		return
	}
	if body.Status == models.VerificationRejected && body.Reason == "" {
		writeError(w, http.StatusBadRequest, "reason is required when rejecting")
		return
	}

	set := bson.M{
		"fssai.validation_status": body.Status,
		"fssai.validation_notes":  body.Notes,
		"updated_at":              time.Now(),
	}
	if body.Status == models.VerificationRejected {
		set["fssai.rejection_reason"] = body.Reason
	} else {
		set["fssai.rejection_reason"] = ""
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx, bson.M{"_id": kitchenID}, bson.M{"$set": set}, opts).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "FSSAI status updated successfully",
		"data":    kitchen,
	})
}

// Approve or reject the kitchen's service pincode
func LocationDecision(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchenID, err := primitive.ObjectIDFromHex(mux.Vars(r)["kitchen_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Status != models.VerificationVerified && body.Status != models.VerificationRejected {
		writeError(w, http.StatusBadRequest, "status must be 'verified' or 'rejected'")
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": kitchenID},
		bson.M{"$set": bson.M{"pincode_verification_status": body.Status, "updated_at": time.Now()}},
		opts).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Location status updated successfully",
		"data":    kitchen,
	})
}

// Schedule or complete the verification video call
func ScheduleVideoCall(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchenID, err := primitive.ObjectIDFromHex(mux.Vars(r)["kitchen_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
		return
	}

	var body struct {
		Status      string     `json:"status"`
		ScheduledAt *time.Time `json:"scheduled_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Status != models.VideoCallScheduled && body.Status != models.VideoCallCompleted {
		writeError(w, http.StatusBadRequest, "status must be 'scheduled' or 'completed'")
		return
	}
	if body.Status == models.VideoCallScheduled && body.ScheduledAt == nil {
		writeError(w, http.StatusBadRequest, "scheduled_at is required when scheduling")
		return
	}

	set := bson.M{
		"video_call.status": body.Status,
		"updated_at":        time.Now(),
	}
	if body.ScheduledAt != nil {
		set["video_call.scheduled_at"] = *body.ScheduledAt
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx, bson.M{"_id": kitchenID}, bson.M{"$set": set}, opts).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Video call updated successfully",
		"data":    kitchen,
	})
}

// Record the premium trial order outcome
func SetPremiumTrial(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchenID, err := primitive.ObjectIDFromHex(mux.Vars(r)["kitchen_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
		return
	}

	var body struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Status != models.TrialOrderPassed && body.Status != models.TrialOrderFailed {
		writeError(w, http.StatusBadRequest, "status must be 'passed' or 'failed'")
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": kitchenID},
		bson.M{"$set": bson.M{
			"premium_verification.trial_order_status": body.Status,
			"premium_verification.notes":              body.Notes,
			"updated_at":                              time.Now(),
		}}, opts).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Premium trial status updated successfully",
		"data":    kitchen,
	})
}

// Suspend or reinstate a kitchen; suspended kitchens disappear from browse
// and cannot take bookings.
func SuspendKitchen(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchenID, err := primitive.ObjectIDFromHex(mux.Vars(r)["kitchen_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
		return
	}

	var body struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.IsActive == nil {
		writeError(w, http.StatusBadRequest, "is_active is required")
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var kitchen models.Kitchen
	if err := kitchenCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": kitchenID},
		bson.M{"$set": bson.M{"is_active": *body.IsActive, "updated_at": time.Now()}},
		opts).Decode(&kitchen); err != nil {
		writeError(w, http.StatusNotFound, "Kitchen not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Kitchen status updated successfully",
		"data":    kitchen,
	})
}

// All orders across the platform, filterable by status and date
func AdminListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		day, err := helper.ParseDateOnlyUTC(dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter["date"] = day
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
		"count":   len(orders),
		"data":    orders,
	})
}

// All meal offerings, filterable by kitchen and date
func AdminListMenus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if kidStr := r.URL.Query().Get("kitchen_id"); kidStr != "" {
		kid, err := primitive.ObjectIDFromHex(kidStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
			return
		}
		filter["kitchen_id"] = kid
	}
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		day, err := helper.ParseDateOnlyUTC(dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter["date"] = day
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "meal_type", Value: 1}})
	cursor, err := mealCollection.Find(ctx, filter, findOpts)
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
		"count":   len(meals),
		"data":    meals,
	})
}

// All ratings for moderation, filterable by kitchen
func AdminListReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if kidStr := r.URL.Query().Get("kitchen_id"); kidStr != "" {
		kid, err := primitive.ObjectIDFromHex(kidStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
			return
		}
		filter["kitchen_id"] = kid
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := ratingCollection.Find(ctx, filter, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving reviews")
		return
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding review data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Reviews retrieved successfully",
		"count":   len(ratings),
		"data":    ratings,
	})
}

// Complaint queue, filterable by status, severity, and type
func ListComplaints(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if severity := r.URL.Query().Get("severity"); severity != "" {
		filter["severity"] = severity
	}
	if cType := r.URL.Query().Get("type"); cType != "" {
		filter["type"] = cType
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := complaintCollection.Find(ctx, filter, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving complaints")
		return
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding complaint data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Complaints retrieved successfully",
		"count":   len(complaints),
		"data":    complaints,
	})
}

// File a complaint or policy violation record
func CreateComplaint(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var complaint models.Complaint
	if err := json.NewDecoder(r.Body).Decode(&complaint); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(complaint); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if complaint.Type == "" {
		complaint.Type = models.ComplaintTypeComplaint
	}
	if !models.ValidComplaintType(complaint.Type) {
		writeError(w, http.StatusBadRequest, "Invalid complaint type")
		return
	}
	if complaint.Severity == "" {
		complaint.Severity = models.SeverityMedium
	}
	if !models.ValidSeverity(complaint.Severity) {
		writeError(w, http.StatusBadRequest, "Invalid severity")
		return
	}

	if reporterID, ok := requestUserID(r); ok {
		complaint.Reporter_user_id = &reporterID
	}

	now := time.Now()
	complaint.ID = primitive.NewObjectID()
	complaint.Complaint_id = complaint.ID.Hex()
	complaint.Status = models.ComplaintOpen
	if complaint.Labels == nil {
		complaint.Labels = []string{}
	}
	complaint.Created_at = now
	complaint.Updated_at = now

	if _, err := complaintCollection.InsertOne(ctx, complaint); err != nil {
		writeError(w, http.StatusInternalServerError, "Complaint creation failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Complaint created successfully",
		"data":    complaint,
	})
}

// Update complaint workflow fields
func UpdateComplaint(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	complaintID, err := primitive.ObjectIDFromHex(mux.Vars(r)["complaint_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid complaint ID format")
		return
	}

	var body struct {
		Status     *string  `json:"status"`
		Severity   *string  `json:"severity"`
		AdminNotes *string  `json:"admin_notes"`
		Labels     []string `json:"labels"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if body.Status != nil {
		if !models.ValidComplaintStatus(*body.Status) {
			writeError(w, http.StatusBadRequest, "Invalid complaint status")
			return
		}
		set["status"] = *body.Status
	}
	if body.Severity != nil {
		if !models.ValidSeverity(*body.Severity) {
			writeError(w, http.StatusBadRequest, "Invalid severity")
			return
		}
		set["severity"] = *body.Severity
	}
	if body.AdminNotes != nil {
		set["admin_notes"] = *body.AdminNotes
	}
	if body.Labels != nil {
		set["labels"] = body.Labels
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var complaint models.Complaint
	if err := complaintCollection.FindOneAndUpdate(ctx, bson.M{"_id": complaintID}, bson.M{"$set": set}, opts).Decode(&complaint); err != nil {
		writeError(w, http.StatusNotFound, "Complaint not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Complaint updated successfully",
		"data":    complaint,
	})
}

// Announcements, newest first
func ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := announcementCollection.Find(ctx, filter, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving announcements")
		return
	}
	defer cursor.Close(ctx)

	var announcements []models.Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding announcement data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Announcements retrieved successfully",
		"count":   len(announcements),
		"data":    announcements,
	})
}

// Create an announcement; defaults to a draft for everyone
func CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var announcement models.Announcement
	if err := json.NewDecoder(r.Body).Decode(&announcement); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(announcement); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if announcement.Audience == "" {
		announcement.Audience = models.AudienceAll
	}
	if !models.ValidAudience(announcement.Audience) {
		writeError(w, http.StatusBadRequest, "Invalid audience")
		return
	}
	if announcement.Status == "" {
		announcement.Status = models.AnnouncementDraft
	}
	if !models.ValidAnnouncementStatus(announcement.Status) {
		writeError(w, http.StatusBadRequest, "Invalid announcement status")
		return
	}
	if announcement.Priority == "" {
		announcement.Priority = "normal"
	}
	if !models.ValidPriority(announcement.Priority) {
		writeError(w, http.StatusBadRequest, "Invalid priority")
		return
	}

	if creatorID, ok := requestUserID(r); ok {
		announcement.Created_by_user_id = &creatorID
	}

	now := time.Now()
	announcement.ID = primitive.NewObjectID()
	announcement.Announcement_id = announcement.ID.Hex()
	announcement.Created_at = now
	announcement.Updated_at = now

	if _, err := announcementCollection.InsertOne(ctx, announcement); err != nil {
		writeError(w, http.StatusInternalServerError, "Announcement creation failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Announcement created successfully",
		"data":    announcement,
	})
}

// Update announcement content or move it through its lifecycle
func UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	announcementID, err := primitive.ObjectIDFromHex(mux.Vars(r)["announcement_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid announcement ID format")
		return
	}

	var body struct {
		Title     *string    `json:"title"`
		Body      *string    `json:"body"`
		Audience  *string    `json:"audience"`
		Status    *string    `json:"status"`
		Priority  *string    `json:"priority"`
		PublishAt *time.Time `json:"publish_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if body.Title != nil {
		set["title"] = *body.Title
	}
	if body.Body != nil {
		set["body"] = *body.Body
	}
	if body.Audience != nil {
		if !models.ValidAudience(*body.Audience) {
			writeError(w, http.StatusBadRequest, "Invalid audience")
			return
		}
		set["audience"] = *body.Audience
	}
	if body.Status != nil {
		if !models.ValidAnnouncementStatus(*body.Status) {
			writeError(w, http.StatusBadRequest, "Invalid announcement status")
			return
		}
		set["status"] = *body.Status
	}
	if body.Priority != nil {
		if !models.ValidPriority(*body.Priority) {
			writeError(w, http.StatusBadRequest, "Invalid priority")
			return
		}
		set["priority"] = *body.Priority
	}
	if body.PublishAt != nil {
		set["publish_at"] = *body.PublishAt
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var announcement models.Announcement
	if err := announcementCollection.FindOneAndUpdate(ctx, bson.M{"_id": announcementID}, bson.M{"$set": set}, opts).Decode(&announcement); err != nil {
		writeError(w, http.StatusNotFound, "Announcement not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Announcement updated successfully",
		"data":    announcement,
	})
}

// Platform settings key/value list
func ListSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "key", Value: 1}})
	cursor, err := settingCollection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error retrieving settings")
		return
	}
	defer cursor.Close(ctx)

	var settings []models.Setting
	if err := cursor.All(ctx, &settings); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding setting data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Settings retrieved successfully",
		"data":    settings,
	})
}

// Upsert a setting by key
func PutSetting(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	key := mux.Vars(r)["key"]
	if key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	var body struct {
		Value interface{} `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Value == nil {
		writeError(w, http.StatusBadRequest, "value is required")
		return
	}

	now := time.Now()
	set := bson.M{
		"value":      body.Value,
		"updated_at": now,
	}
	if adminID, ok := requestUserID(r); ok {
		set["updated_by_user_id"] = adminID
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var setting models.Setting
	if err := settingCollection.FindOneAndUpdate(ctx, bson.M{"key": key}, update, opts).Decode(&setting); err != nil {
		writeError(w, http.StatusInternalServerError, "Setting update failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Setting saved successfully",
		"data":    setting,
	})
}
