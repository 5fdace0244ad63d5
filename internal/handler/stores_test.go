package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/task-tracker/internal/model"
	"github.com/iliyamo/task-tracker/internal/repository"
)

// In-memory stores mirroring the repository contracts, including the
// normalization and sentinel errors the handlers rely on.

type fakeUserStore struct {
	mu sync.Mutex
	// conflictOnCreate simulates losing the existence-check/insert race:
	// GetByEmail misses but the insert still hits the unique index.
	conflictOnCreate bool
	users            []*model.User
}

func newFakeUserStore() *fakeUserStore { return &fakeUserStore{} }

func (s *fakeUserStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conflictOnCreate {
		return repository.ErrEmailExists
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	for _, e := range s.users {
		if e.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	u.ID = uuid.NewString()
	s.users = append(s.users, u)
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type fakeTaskStore struct {
	mu    sync.Mutex
	tasks []*model.Task // insertion order; List returns newest (last) first
}

func newFakeTaskStore() *fakeTaskStore { return &fakeTaskStore{} }

func (s *fakeTaskStore) Create(_ context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	s.tasks = append(s.tasks, t)
	return nil
}

func (s *fakeTaskStore) ListByOwner(_ context.Context, ownerID string) ([]*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*model.Task{}
	for i := len(s.tasks) - 1; i >= 0; i-- {
		if s.tasks[i].OwnerID == ownerID {
			out = append(out, s.tasks[i])
		}
	}
	return out, nil
}

func (s *fakeTaskStore) UpdateByIDAndOwner(_ context.Context, id, ownerID string, title, status *string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id && t.OwnerID == ownerID {
			if title != nil {
				t.Title = *title
			}
			if status != nil {
				t.Status = *status
			}
			return t, nil
		}
	}
	return nil, repository.ErrTaskNotFound
}

func (s *fakeTaskStore) DeleteByIDAndOwner(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id && t.OwnerID == ownerID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrTaskNotFound
}

// doJSON runs a handler against a synthetic request. uid, when non-empty,
// stands in for the subject the bearer guard would have injected.
func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body, uid string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		c.Set("user_id", uid)
	}
	if len(params) > 0 {
		names := make([]string, 0, len(params))
		values := make([]string, 0, len(params))
		for k, v := range params {
			names = append(names, k)
			values = append(values, v)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}
