package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateUserRequest accepts both form and JSON bodies.
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
}

// UserResponse is the projected user shape. The id key is "_id" on the wire
// for compatibility with the store's primary key naming.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
	}
}

// MapUsersToResponse converts a slice of domain.User to a slice of UserResponse DTO.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = MapUserToResponse(&user)
	}
	return responses
}

// --- Handler Methods ---

// CreateUser handles POST /api/users.
// Responds 201 {username, _id}, 400 when the username is missing.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	// Malformed bodies are tolerated; missing fields surface as the
	// username-required failure below.
	_ = c.ShouldBind(&req)

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrUsernameRequired) {
			abortWithError(c, http.StatusBadRequest, "Username is required")
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// ListUsers handles GET /api/users.
// Responds 200 with every user projected to {username, _id}.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if users == nil {
		c.JSON(http.StatusOK, []UserResponse{})
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(users))
}
