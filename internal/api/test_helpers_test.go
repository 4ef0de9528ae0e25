package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"alcyxob/exercise-tracker/internal/service"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubUserRepo is an in-memory repository.UserRepository backing the handler
// tests, so requests flow through the real services and routes.
type stubUserRepo struct {
	users    map[primitive.ObjectID]*domain.User
	order    []primitive.ObjectID
	failWith error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if r.failWith != nil {
		return primitive.NilObjectID, r.failWith
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	stored.Exercises = append([]domain.Exercise(nil), user.Exercises...)
	r.users[user.ID] = &stored
	r.order = append(r.order, user.ID)
	return user.ID, nil
}

func (r *stubUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.users[id]
		out = append(out, domain.User{ID: u.ID, Username: u.Username})
	}
	return out, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	clone.Exercises = append([]domain.Exercise(nil), u.Exercises...)
	return &clone, nil
}

func (r *stubUserRepo) UpdateExercises(_ context.Context, id primitive.ObjectID, exercises []domain.Exercise) error {
	if r.failWith != nil {
		return r.failWith
	}
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Exercises = append([]domain.Exercise(nil), exercises...)
	return nil
}

// newTestRouter wires the real services and routes over a stub repository.
func newTestRouter() (*gin.Engine, *stubUserRepo) {
	repo := newStubUserRepo()
	router := gin.New()
	SetupRoutes(router, service.NewUserService(repo), service.NewExerciseLogService(repo))
	return router, repo
}

func mustStatus(t *testing.T, resp *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if resp.Code != expected {
		t.Fatalf("expected status %d, got %d (body %s)", expected, resp.Code, resp.Body.String())
	}
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v (body %s)", err, resp.Body.String())
	}
	return out
}
