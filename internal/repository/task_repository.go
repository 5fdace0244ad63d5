package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/task-tracker/internal/model"
)

// TaskRepo encapsulates all queries against the `tasks` table. Every read
// and mutation is scoped by owner_id in the same statement, so a task owned
// by someone else is indistinguishable from a missing one.
type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{db: db} }

// Create inserts a task and fills in the generated ID and creation timestamp.
func (r *TaskRepo) Create(ctx context.Context, t *model.Task) error {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (id, title, status, owner_id, created_at) VALUES (?,?,?,?,?)",
		t.ID, t.Title, t.Status, t.OwnerID, t.CreatedAt)
	return err
}

// ListByOwner returns all tasks for the given owner, newest first.
func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, status, owner_id, created_at FROM tasks WHERE owner_id=? ORDER BY created_at DESC",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Task{}
	for rows.Next() {
		t := new(model.Task)
		if err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.OwnerID, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateByIDAndOwner applies the provided fields to a task that exists AND
// belongs to ownerID, returning the updated record. Lookup and mutation run
// inside one transaction with the row locked, so a concurrent delete cannot
// slip between the find and the update. Nil fields are left untouched.
// Returns ErrTaskNotFound for both a missing and a foreign-owned task.
func (r *TaskRepo) UpdateByIDAndOwner(ctx context.Context, id, ownerID string, title, status *string) (*model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var t model.Task
	err = tx.QueryRowContext(ctx,
		"SELECT id, title, status, owner_id, created_at FROM tasks WHERE id=? AND owner_id=? FOR UPDATE",
		id, ownerID).Scan(&t.ID, &t.Title, &t.Status, &t.OwnerID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if title != nil {
		t.Title = *title
	}
	if status != nil {
		t.Status = *status
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE tasks SET title=?, status=? WHERE id=? AND owner_id=?",
		t.Title, t.Status, t.ID, t.OwnerID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteByIDAndOwner removes a task scoped by id and owner in a single
// statement; RowsAffected decides found vs not found, which keeps the
// operation atomic and makes repeat deletes return ErrTaskNotFound.
func (r *TaskRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id=? AND owner_id=?", id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTaskNotFound
	}
	return nil
}
