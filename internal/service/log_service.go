package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseLog is the answer to a log query: the owning user's identity plus
// the filtered, limited view of their exercise sequence.
type ExerciseLog struct {
	UserID   primitive.ObjectID
	Username string
	Entries  []domain.Exercise
}

// ExerciseLogService appends exercise entries to a user and answers
// filtered/limited log queries over the embedded sequence.
type ExerciseLogService interface {
	AppendExercise(ctx context.Context, userID primitive.ObjectID, description, duration, date string) (*domain.User, domain.Exercise, error)
	QueryLog(ctx context.Context, userID primitive.ObjectID, from, to, limit string) (*ExerciseLog, error)
}

// exerciseLogService implements the ExerciseLogService interface.
type exerciseLogService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewExerciseLogService creates a new instance of exerciseLogService.
func NewExerciseLogService(userRepo repository.UserRepository) ExerciseLogService {
	return &exerciseLogService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// AppendExercise builds an entry from raw caller input and appends it to the
// user's exercise sequence. Malformed duration or date input never fails the
// operation: duration degrades to its invalid sentinel and date to
// "Invalid Date", and the entry is stored anyway. A missing date defaults to
// the current date.
func (s *exerciseLogService) AppendExercise(ctx context.Context, userID primitive.ObjectID, description, duration, date string) (*domain.User, domain.Exercise, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.Exercise{}, ErrUserNotFound
		}
		return nil, domain.Exercise{}, err
	}

	entry := domain.Exercise{
		Description: description,
		Duration:    domain.ParseDuration(duration),
		Date:        domain.CoerceDate(date, s.now()),
	}

	user.Exercises = append(user.Exercises, entry)
	if err := s.userRepo.UpdateExercises(ctx, user.ID, user.Exercises); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.Exercise{}, ErrUserNotFound
		}
		return nil, domain.Exercise{}, err
	}

	return user, entry, nil
}

// QueryLog returns the user's exercise sequence, optionally narrowed by an
// inclusive [from, to] date range and truncated to the first limit entries.
// Filters apply before the limit and never reorder the sequence. Entries
// whose stored date does not parse are dropped whenever a range filter is
// present; an unparseable from/to value matches nothing.
func (s *exerciseLogService) QueryLog(ctx context.Context, userID primitive.ObjectID, from, to, limit string) (*ExerciseLog, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	entries := user.Exercises

	if from != "" {
		fromDate, fromOK := domain.ParseDate(from)
		entries = filterByDate(entries, func(d time.Time) bool {
			return fromOK && !d.Before(fromDate)
		})
	}
	if to != "" {
		toDate, toOK := domain.ParseDate(to)
		entries = filterByDate(entries, func(d time.Time) bool {
			return toOK && !d.After(toDate)
		})
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			n = 0
		}
		if n < len(entries) {
			entries = entries[:n]
		}
	}

	// Re-format dates on the way out so stored values in any accepted layout
	// come back in the fixed log format.
	out := make([]domain.Exercise, len(entries))
	for i, e := range entries {
		e.Date = domain.ReformatDate(e.Date)
		out[i] = e
	}

	return &ExerciseLog{
		UserID:   user.ID,
		Username: user.Username,
		Entries:  out,
	}, nil
}

// filterByDate keeps entries whose stored date parses and satisfies keep,
// preserving append order.
func filterByDate(entries []domain.Exercise, keep func(time.Time) bool) []domain.Exercise {
	filtered := make([]domain.Exercise, 0, len(entries))
	for _, e := range entries {
		d, ok := domain.ParseDate(e.Date)
		if ok && keep(d) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
