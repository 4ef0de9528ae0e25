package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseLogHandler holds the exercise log service dependency.
type ExerciseLogHandler struct {
	logService service.ExerciseLogService
}

// NewExerciseLogHandler creates a new ExerciseLogHandler.
func NewExerciseLogHandler(logService service.ExerciseLogService) *ExerciseLogHandler {
	return &ExerciseLogHandler{logService: logService}
}

// --- DTOs for API (Data Transfer Objects) ---

// FlexString binds from form values and from JSON strings or numbers.
// Clients send duration either way; parsing happens downstream.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}
	// Numeric token: keep its literal text.
	*s = FlexString(data)
	return nil
}

// UnmarshalParam implements gin's form/query binding hook.
func (s *FlexString) UnmarshalParam(param string) error {
	*s = FlexString(param)
	return nil
}

// AppendExerciseRequest accepts both form and JSON bodies. Every field is
// optional; absent or malformed values degrade rather than reject.
type AppendExerciseRequest struct {
	Description string     `form:"description" json:"description"`
	Duration    FlexString `form:"duration" json:"duration"`
	Date        string     `form:"date" json:"date"`
}

// ExerciseResponse echoes the appended entry together with the owning user.
// The _id is the user's id; entries have no id of their own.
type ExerciseResponse struct {
	Username    string          `json:"username"`
	Description string          `json:"description"`
	Duration    domain.Duration `json:"duration"`
	Date        string          `json:"date"`
	ID          string          `json:"_id"`
}

// LogEntryResponse is one entry in a log query answer.
type LogEntryResponse struct {
	Description string          `json:"description"`
	Duration    domain.Duration `json:"duration"`
	Date        string          `json:"date"`
}

// LogResponse is the answer to a log query; count is the length of the
// returned (filtered and limited) log.
type LogResponse struct {
	Username string             `json:"username"`
	Count    int                `json:"count"`
	ID       string             `json:"_id"`
	Log      []LogEntryResponse `json:"log"`
}

// MapLogToResponse converts a service.ExerciseLog to LogResponse DTO.
func MapLogToResponse(logResult *service.ExerciseLog) LogResponse {
	entries := make([]LogEntryResponse, len(logResult.Entries))
	for i, e := range logResult.Entries {
		entries[i] = LogEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		}
	}
	return LogResponse{
		Username: logResult.Username,
		Count:    len(entries),
		ID:       logResult.UserID.Hex(),
		Log:      entries,
	}
}

// --- Handler Methods ---

// AppendExercise handles POST /api/users/:_id/exercises.
// Responds 200 {username, description, duration, date, _id}; 400 when the
// user id does not resolve.
func (h *ExerciseLogHandler) AppendExercise(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("_id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "User not found")
		return
	}

	var req AppendExerciseRequest
	// Tolerate malformed bodies: absent fields fall back to their sentinels.
	_ = c.ShouldBind(&req)

	user, entry, err := h.logService.AppendExercise(
		c.Request.Context(),
		userID,
		req.Description,
		string(req.Duration),
		req.Date,
	)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusBadRequest, "User not found")
		} else {
			abortWithStoreError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, ExerciseResponse{
		Username:    user.Username,
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        entry.Date,
		ID:          user.ID.Hex(),
	})
}

// GetLogs handles GET /api/users/:_id/logs with optional from/to/limit
// query parameters.
func (h *ExerciseLogHandler) GetLogs(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("_id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "User not found")
		return
	}

	logResult, err := h.logService.QueryLog(
		c.Request.Context(),
		userID,
		c.Query("from"),
		c.Query("to"),
		c.Query("limit"),
	)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusBadRequest, "User not found")
		} else {
			abortWithStoreError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapLogToResponse(logResult))
}
