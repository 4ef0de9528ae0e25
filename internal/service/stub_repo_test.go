package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubUserRepo is an in-memory repository.UserRepository used by the service
// tests in place of a live MongoDB.
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

// seedUser inserts a user with the given exercises directly into the stub.
func (r *stubUserRepo) seedUser(username string, exercises ...domain.Exercise) primitive.ObjectID {
	id := primitive.NewObjectID()
	r.users[id] = &domain.User{ID: id, Username: username, Exercises: exercises}
	r.order = append(r.order, id)
	return id
}

// fixedNowLogService builds an ExerciseLogService whose clock is pinned.
func fixedNowLogService(repo repository.UserRepository, now time.Time) ExerciseLogService {
	return &exerciseLogService{userRepo: repo, now: func() time.Time { return now }}
}
