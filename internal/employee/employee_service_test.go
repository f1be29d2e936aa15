package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	employeeerrors "emp-portal/internal/employee/errors"
	"emp-portal/internal/events"
	"emp-portal/internal/manager"
	"emp-portal/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, empl *Employee) error
	findAllFn  func(ctx context.Context) ([]Employee, error)
	findByIDFn func(ctx context.Context, empID string) (*Employee, error)
	existsFn   func(ctx context.Context, empID string) (bool, error)
	deleteFn   func(ctx context.Context, empID string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, empl *Employee) error {
	return f.createFn(ctx, empl)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByID(ctx context.Context, empID string) (*Employee, error) {
	return f.findByIDFn(ctx, empID)
}
func (f *fakeRepo) Exists(ctx context.Context, empID string) (bool, error) {
	return f.existsFn(ctx, empID)
}
func (f *fakeRepo) Delete(ctx context.Context, empID string) (int64, error) {
	return f.deleteFn(ctx, empID)
}

type fakeManagerRepo struct {
	findByIDFn func(ctx context.Context, managerID string) (*manager.Manager, error)
	existsFn   func(ctx context.Context, managerID string) (bool, error)
}

func (f *fakeManagerRepo) FindByID(ctx context.Context, managerID string) (*manager.Manager, error) {
	return f.findByIDFn(ctx, managerID)
}
func (f *fakeManagerRepo) Exists(ctx context.Context, managerID string) (bool, error) {
	return f.existsFn(ctx, managerID)
}

type fakeOutboxRepo struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error            { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func addRequest() AddEmployeeRequest {
	return AddEmployeeRequest{
		EmpID:       "E100",
		Name:        "Alice",
		JobRole:     "Engineer",
		Salary:      "90000",
		ContactInfo: "alice@example.com",
		HireDate:    "2024-01-02",
		ManagerID:   "M1",
		Password:    "secret",
	}
}

func TestService_Add(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Employee
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.existsFn = func(ctx context.Context, empID string) (bool, error) { return false, nil }
	repo.createFn = func(ctx context.Context, empl *Employee) error { saved = *empl; return nil }
	managers := &fakeManagerRepo{
		existsFn: func(ctx context.Context, managerID string) (bool, error) { return true, nil },
	}
	outbox := &fakeOutboxRepo{}

	svc := NewServiceWithOutbox(db, repo, managers, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()
	err := svc.Add(context.Background(), addRequest())
	assert.NoError(t, err)
	assert.Equal(t, "E100", saved.EmpID)
	assert.Equal(t, "M1", saved.ManagerID)

	assert.Len(t, outbox.events, 1)
	assert.Equal(t, events.TypeEmployeeCreated, outbox.events[0].EventType)
	assert.Equal(t, events.EmployeeLifecycleTopic, outbox.events[0].Topic)
	var published events.EmployeeLifecycleEvent
	assert.NoError(t, json.Unmarshal(outbox.events[0].Payload, &published))
	assert.Equal(t, "E100", published.EmpID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Add_DuplicateID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.existsFn = func(ctx context.Context, empID string) (bool, error) { return true, nil }

	svc := NewService(db, repo, &fakeManagerRepo{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := svc.Add(context.Background(), addRequest())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Add_UnknownManager(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.existsFn = func(ctx context.Context, empID string) (bool, error) { return false, nil }
	managers := &fakeManagerRepo{
		existsFn: func(ctx context.Context, managerID string) (bool, error) { return false, nil },
	}

	svc := NewService(db, repo, managers)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := svc.Add(context.Background(), addRequest())
	assert.ErrorIs(t, err, employeeerrors.ErrUnknownManager)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetAll(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Employee, error) {
			return []Employee{{EmpID: "E100"}, {EmpID: "E200"}}, nil
		},
	}

	svc := NewService(db, repo, &fakeManagerRepo{})

	empls, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, empls, 2)
}

func TestService_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var deleted string
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.deleteFn = func(ctx context.Context, empID string) (int64, error) {
		deleted = empID
		return 1, nil
	}
	managers := &fakeManagerRepo{
		existsFn: func(ctx context.Context, managerID string) (bool, error) { return true, nil },
	}
	outbox := &fakeOutboxRepo{}

	svc := NewServiceWithOutbox(db, repo, managers, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()
	err := svc.Delete(context.Background(), "E100", "M1")
	assert.NoError(t, err)
	assert.Equal(t, "E100", deleted)
	assert.Len(t, outbox.events, 1)
	assert.Equal(t, events.TypeEmployeeDeleted, outbox.events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_ManagerNotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	managers := &fakeManagerRepo{
		existsFn: func(ctx context.Context, managerID string) (bool, error) { return false, nil },
	}

	svc := NewService(db, repo, managers)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := svc.Delete(context.Background(), "E100", "M999")
	assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_EmployeeNotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.deleteFn = func(ctx context.Context, empID string) (int64, error) { return 0, nil }
	managers := &fakeManagerRepo{
		existsFn: func(ctx context.Context, managerID string) (bool, error) { return true, nil },
	}

	svc := NewService(db, repo, managers)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := svc.Delete(context.Background(), "E999", "M1")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
