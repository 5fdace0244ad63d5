package handler

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/task-tracker/internal/model"
	"github.com/iliyamo/task-tracker/internal/queue"
)

// UserStore is the slice of the user repository the handlers need.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// TaskStore is the slice of the task repository the handlers need. All
// lookups are scoped by owner inside the store itself.
type TaskStore interface {
	Create(ctx context.Context, t *model.Task) error
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Task, error)
	UpdateByIDAndOwner(ctx context.Context, id, ownerID string, title, status *string) (*model.Task, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
}

// EventSink receives activity events after successful mutations. It must not
// block; the wiring in main publishes in a goroutine. A nil sink disables
// event publishing.
type EventSink func(ctx context.Context, ev queue.ActivityEvent)

func (s EventSink) emit(ctx context.Context, ev queue.ActivityEvent) {
	if s != nil {
		s(ctx, ev)
	}
}

// callerID extracts the verified subject placed in the context by the
// BearerAuth middleware.
func callerID(c echo.Context) (string, error) {
	if id, ok := c.Get("user_id").(string); ok && id != "" {
		return id, nil
	}
	return "", errors.New("no user_id in context")
}
