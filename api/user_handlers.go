package api

import (
	"encoding/json"
	"errors"
	"net/http"

	usertypes "github.com/matchday-club/predictor/app/modules/user/domain/types"
	userdb "github.com/matchday-club/predictor/app/modules/user/infrastructure/repositories"
)

// UserHandlers handles HTTP requests for user profiles. The module is thin
// enough that handlers talk to the repository directly.
type UserHandlers struct {
	users userdb.Repository
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(users userdb.Repository) *UserHandlers {
	return &UserHandlers{users: users}
}

// GetMe returns the authenticated caller's profile.
func (h *UserHandlers) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type createUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
}

// CreateUser mirrors a profile from the identity service. Admin only.
func (h *UserHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	user := &usertypes.User{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	}
	if err := h.users.CreateUser(r.Context(), user); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}
