package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
)

// The caller's favorite kitchens, resolved to full documents
func GetFavorites(w http.ResponseWriter, r *http.Request) {
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

	kitchens := []models.Kitchen{}
	if len(user.FavoriteKitchens) > 0 {
		cursor, err := kitchenCollection.Find(ctx, bson.M{"_id": bson.M{"$in": user.FavoriteKitchens}})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Error retrieving favorites")
			return
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &kitchens); err != nil {
			writeError(w, http.StatusInternalServerError, "Error decoding kitchen data")
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Favorites retrieved successfully",
		"data":    kitchens,
	})
}

// Add or remove a kitchen from the caller's favorites
func ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	kitchenID, err := primitive.ObjectIDFromHex(mux.Vars(r)["kitchen_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid kitchen ID format")
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

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	isFavorite := false
	for _, id := range user.FavoriteKitchens {
		if id == kitchenID {
			isFavorite = true
			break
		}
	}

	var update bson.M
	message := "Kitchen added to favorites"
	if isFavorite {
		update = bson.M{
			"$pull": bson.M{"favorite_kitchens": kitchenID},
			"$set":  bson.M{"updated_at": time.Now()},
		}
		message = "Kitchen removed from favorites"
	} else {
		update = bson.M{
			"$addToSet": bson.M{"favorite_kitchens": kitchenID},
			"$set":      bson.M{"updated_at": time.Now()},
		}
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"favorite_kitchens": 1})
	var updated models.User
	if err := userCollection.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&updated); err != nil {
		writeError(w, http.StatusInternalServerError, "Favorite update failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   message,
		"favorited": !isFavorite,
		"data":      updated.FavoriteKitchens,
	})
}
