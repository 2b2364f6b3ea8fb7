package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"vibeholidays/db"
	"vibeholidays/globals"
	"vibeholidays/middleware"
	"vibeholidays/models"
	"vibeholidays/rdx"
	"vibeholidays/utils"
	"vibeholidays/validate"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenCacheHash = "vibetokens"

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"username": input.Username}).Decode(&storedUser)
	if err != nil {
		// Same message for unknown user and wrong password.
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	tokenString, err := GenerateAccessToken(storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	_, err = db.UserCollection.UpdateOne(
		r.Context(),
		bson.M{"userid": storedUser.UserID},
		bson.M{"$set": bson.M{"last_login": time.Now()}},
	)
	if err != nil {
		log.Printf("Failed to record last login: %v", err)
	}

	if rdx.Conn != nil {
		if err := rdx.RdxHset(tokenCacheHash, storedUser.UserID, tokenString); err != nil {
			log.Printf("Redis token storage failed: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"token":   tokenString,
		"user": utils.M{
			"userid":   storedUser.UserID,
			"username": storedUser.Username,
			"email":    storedUser.Email,
			"role":     storedUser.Role,
		},
	})
}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validate.Credentials(input.Username, input.Email, input.Password); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	username := strings.TrimSpace(input.Username)
	email := validate.NormalizeEmail(input.Email)

	// Every account is an admin account, so open registration would let
	// anyone mint a token that passes the admin guards. Only the first
	// account may self-register; after that accounts come from the seed
	// tool or an existing admin.
	count, err := db.UserCollection.CountDocuments(r.Context(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusForbidden, "Registration is closed")
		return
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Printf("Hash error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	now := time.Now()
	user := models.User{
		UserID:       "u" + utils.GenerateRandomString(10),
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.UserCollection.InsertOne(r.Context(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "User already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"user": utils.M{
			"userid":   user.UserID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

func changePasswordHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if len(input.NewPassword) < 8 {
		utils.RespondWithError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	var storedUser models.User
	if err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&storedUser); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	if err := UpdatePassword(r.Context(), userID, input.NewPassword); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Password updated"})
}

func logoutHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	if rdx.Conn != nil {
		if err := rdx.RdxHdel(tokenCacheHash, userID); err != nil {
			log.Printf("Redis token removal failed: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Logged out"})
}

// HashPassword wraps bcrypt so the cost lives in one place. Callers
// persisting a user must store the hash, never the plaintext.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// GenerateAccessToken signs an HS256 JWT with the user id as subject.
func GenerateAccessToken(user models.User) (string, error) {
	claims := middleware.Claims{
		Username: user.Username,
		UserID:   user.UserID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL())),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func tokenTTL() time.Duration {
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 24 * time.Hour
}

// UpdatePassword re-hashes and stores a new password for a user. Other
// profile updates go straight through UpdateOne and leave the stored
// hash untouched.
func UpdatePassword(ctx context.Context, userID, plaintext string) error {
	hashed, err := HashPassword(plaintext)
	if err != nil {
		return err
	}
	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"password": hashed, "updatedAt": time.Now()}},
	)
	return err
}
