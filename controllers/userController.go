package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	database "github.com/kalviumcommunity/s81-Kausiki-CraveCart/config"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/helper"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/services"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "user")

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLetter  = regexp.MustCompile(`[A-Za-z]`)
	hasDigit   = regexp.MustCompile(`\d`)
	passwordRe = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
)

func validPassword(password string) bool {
	return passwordRe.MatchString(password) && hasLetter.MatchString(password) && hasDigit.MatchString(password)
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword)) == nil
}

// reconcileRole recomputes the user's role from the admin allow-list and
// kitchen ownership and persists it only when it changed.
func reconcileRole(ctx context.Context, user *models.User) string {
	ownsKitchen := false
	count, err := kitchenCollection.CountDocuments(ctx, bson.M{"owner_user_id": user.ID})
	if err == nil && count > 0 {
		ownsKitchen = true
	}

	role := services.ResolveRole(*user.Email, ownsKitchen, helper.AdminEmails())
	if user.Role != role {
		userCollection.UpdateOne(ctx,
			bson.M{"_id": user.ID},
			bson.M{"$set": bson.M{"role": role, "updated_at": time.Now()}},
		)
		user.Role = role
	}
	return role
}

func SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.Name == "" || body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !emailRe.MatchString(body.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	if !validPassword(body.Password) {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters long and contain at least one letter and one number")
		return
	}

	email := helper.NormalizeEmail(body.Email)

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error checking email")
		return
	}
	if count > 0 {
		writeError(w, http.StatusConflict, "User already exists")
		return
	}

	password := HashPassword(body.Password)
	now := time.Now()

	user := models.User{
		ID:               primitive.NewObjectID(),
		Name:             &body.Name,
		Email:            &email,
		Password:         &password,
		Role:             models.RoleCustomer,
		Is_activated:     true,
		FavoriteKitchens: []primitive.ObjectID{},
		Created_at:       now,
		Updated_at:       now,
	}
	user.User_id = user.ID.Hex()

	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		writeError(w, http.StatusInternalServerError, "User creation failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Signup successful",
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	email := helper.NormalizeEmail(body.Email)

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	// Static admin credential shortcut: bootstraps the admin account on first
	// login.
	staticEmail, staticPassword := helper.StaticAdminCredentials()
	if staticEmail != "" && email == staticEmail && body.Password == staticPassword {
		if err != nil {
			name := "Admin"
			password := HashPassword(staticPassword)
			now := time.Now()
			user = models.User{
				ID:               primitive.NewObjectID(),
				Name:             &name,
				Email:            &email,
				Password:         &password,
				Role:             models.RoleAdmin,
				Is_activated:     true,
				FavoriteKitchens: []primitive.ObjectID{},
				Created_at:       now,
				Updated_at:       now,
			}
			user.User_id = user.ID.Hex()
			if _, insertErr := userCollection.InsertOne(ctx, user); insertErr != nil {
				writeError(w, http.StatusInternalServerError, "Login failed")
				return
			}
		}
		respondWithToken(ctx, w, &user)
		return
	}

	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if user.Password == nil {
		writeError(w, http.StatusBadRequest, "Password login is not enabled for this account")
		return
	}
	if !VerifyPassword(body.Password, *user.Password) {
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	respondWithToken(ctx, w, &user)
}

func respondWithToken(ctx context.Context, w http.ResponseWriter, user *models.User) {
	role := reconcileRole(ctx, user)

	token, err := helper.GenerateAccessToken(*user.Email, role, user.User_id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Token generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": map[string]interface{}{
			"user_id": user.User_id,
			"name":    user.Name,
			"email":   user.Email,
			"role":    role,
		},
	})
}

// Forgot password: issue a single-use reset token. Always responds success so
// the endpoint does not leak which emails exist.
func ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	respond := func() {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "If that account exists, a reset link was sent.",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"email": helper.NormalizeEmail(body.Email)}).Decode(&user); err != nil {
		respond()
		return
	}

	resetToken, err := helper.GenerateResetToken(user.User_id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Reset token generation failed")
		return
	}

	frontendBase := os.Getenv("FRONTEND_URL")
	if frontendBase == "" {
		frontendBase = "http://localhost:5173"
	}
	resetLink := frontendBase + "/reset-password?token=" + resetToken

	if mailErr := helper.SendMail(*user.Email, "Reset your CraveCart password",
		"Use this link to reset your password (valid 15 minutes): "+resetLink); mailErr != nil {
		log.Printf("Reset mail send failed: %v", mailErr)
	}

	respond()
}

func ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var body struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == "" || body.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "token and new_password are required")
		return
	}
	if !validPassword(body.NewPassword) {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters long and contain at least one letter and one number")
		return
	}

	uid, ok := helper.ConsumeResetToken(body.Token)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	userID, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid reset token")
		return
	}

	password := HashPassword(body.NewPassword)
	result, err := userCollection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"password": password, "updated_at": time.Now()}},
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Password reset failed")
		return
	}
	if result.MatchedCount == 0 {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Password reset successful",
	})
}

// Current user (auth check)
func GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	userID, ok := requestUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// Get all users with pagination
func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"password": 0})

	cursor, err := userCollection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error occurred while listing users")
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		writeError(w, http.StatusInternalServerError, "Error decoding user data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Users retrieved successfully",
		"count":   len(users),
		"data":    users,
	})
}
