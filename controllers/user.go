package controllers

import (
	"encoding/json"
	"errors"
	"foodiehub-api/models"
	"foodiehub-api/store"
	"foodiehub-api/utils"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserController handles login, registration and profile requests
type UserController struct {
	Users     *store.UserStore
	demoEmail string
	demoHash  []byte
}

// NewUserController creates a new UserController. The demo credential
// is taken from DEMO_EMAIL / DEMO_PASSWORD and kept only as a bcrypt
// hash.
func NewUserController(users *store.UserStore) *UserController {
	email := os.Getenv("DEMO_EMAIL")
	if email == "" {
		email = "demo@foodiehub.com"
	}
	password := os.Getenv("DEMO_PASSWORD")
	if password == "" {
		password = "demo123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return &UserController{
		Users:     users,
		demoEmail: email,
		demoHash:  hash,
	}
}

// Login checks the demo credential and opens the session
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if creds.Email != uc.demoEmail ||
		bcrypt.CompareHashAndPassword(uc.demoHash, []byte(creds.Password)) != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	user := models.User{
		ID:    1,
		Name:  "Demo User",
		Email: creds.Email,
		Phone: "9876543210",
	}
	if err := uc.Users.Login(r.Context(), user); err != nil {
		storageError(w, err)
		return
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Register creates a fresh identity and opens the session. No password
// is stored.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	switch {
	case req.Name == "":
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	case !utils.ValidateEmail(req.Email):
		http.Error(w, "Invalid email address", http.StatusBadRequest)
		return
	case !utils.ValidatePhone(req.Phone):
		http.Error(w, "Enter valid 10-digit phone number", http.StatusBadRequest)
		return
	}

	user := models.User{
		ID:    time.Now().UnixMilli(),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := uc.Users.Login(r.Context(), user); err != nil {
		storageError(w, err)
		return
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Logout clears the identity and removes the persisted record
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := uc.Users.Logout(r.Context()); err != nil {
		storageError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}

// GetProfile retrieves the logged-in identity
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := uc.Users.Current()
	if !ok {
		http.Error(w, "Not logged in", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// UpdateProfile shallow-merges the supplied fields into the identity
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if update.Email != nil && !utils.ValidateEmail(*update.Email) {
		http.Error(w, "Invalid email address", http.StatusBadRequest)
		return
	}
	if update.Phone != nil && !utils.ValidatePhone(*update.Phone) {
		http.Error(w, "Enter valid 10-digit phone number", http.StatusBadRequest)
		return
	}

	user, err := uc.Users.UpdateProfile(r.Context(), update)
	if err != nil {
		if errors.Is(err, store.ErrNotLoggedIn) {
			http.Error(w, "Not logged in", http.StatusUnauthorized)
			return
		}
		storageError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
