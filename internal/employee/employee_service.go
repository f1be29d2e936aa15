package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	employeeerrors "emp-portal/internal/employee/errors"
	"emp-portal/internal/events"
	"emp-portal/internal/manager"
	"emp-portal/internal/messaging/kafka"
	"emp-portal/internal/shared/apperror"
	"emp-portal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Add(ctx context.Context, req AddEmployeeRequest) error
	GetAll(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, empID, managerID string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	managers manager.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, managers manager.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, managers, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	managers manager.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		managers: managers,
		outbox:   outboxRepo,
		logger:   l,
	}
}

// Add runs the documented sequence: duplicate check, manager check, insert.
// The two checks stay separate round trips; a concurrent add that slips
// between them fails at the insert and surfaces through mapRepositoryError.
func (s *service) Add(ctx context.Context, req AddEmployeeRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("add employee requested",
		zap.String("request_id", rid),
		zap.String("emp_id", req.EmpID),
		zap.String("manager_id", req.ManagerID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return apperror.Store(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.Exists(ctx, req.EmpID)
	if err != nil {
		s.logger.Error("add employee duplicate check failed", zap.Error(err))
		return apperror.Store(err)
	}
	if exists {
		s.logger.Warn("add employee duplicate id", zap.String("emp_id", req.EmpID))
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	managerExists, err := s.managers.Exists(ctx, req.ManagerID)
	if err != nil {
		s.logger.Error("add employee manager check failed", zap.Error(err))
		return apperror.Store(err)
	}
	if !managerExists {
		s.logger.Warn("add employee unknown manager", zap.String("manager_id", req.ManagerID))
		return employeeerrors.ErrUnknownManager
	}

	empl := &Employee{
		EmpID:       req.EmpID,
		Name:        req.Name,
		JobRole:     req.JobRole,
		Salary:      req.Salary.String(),
		ContactInfo: req.ContactInfo,
		HireDate:    req.HireDate,
		ManagerID:   req.ManagerID,
		Password:    req.Password,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("add employee persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.writeLifecycleEvent(ctx, tx, events.TypeEmployeeCreated, empl.EmpID, empl.ManagerID, rid); err != nil {
		s.logger.Error("add employee outbox write failed", zap.Error(err))
		return apperror.Store(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("add employee commit failed", zap.Error(err))
		return apperror.Store(err)
	}

	s.logger.Info("add employee success",
		zap.String("request_id", rid),
		zap.String("emp_id", empl.EmpID),
	)
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]Employee, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, apperror.Store(err)
	}
	return empls, nil
}

// Delete gates on manager existence only; ownership of the employee is not
// checked, matching the behavior the frontend depends on.
func (s *service) Delete(ctx context.Context, empID, managerID string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("emp_id", empID),
		zap.String("manager_id", managerID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return apperror.Store(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	managerExists, err := s.managers.Exists(ctx, managerID)
	if err != nil {
		s.logger.Error("delete employee manager check failed", zap.Error(err))
		return apperror.Store(err)
	}
	if !managerExists {
		s.logger.Warn("delete employee unknown manager", zap.String("manager_id", managerID))
		return employeeerrors.ErrManagerNotFound
	}

	rows, err := qtx.Delete(ctx, empID)
	if err != nil {
		s.logger.Error("delete employee persist failed", zap.Error(err))
		return apperror.Wrap(
			err,
			apperror.CodeStoreError,
			"Error deleting employee",
			http.StatusInternalServerError,
		)
	}
	if rows == 0 {
		s.logger.Warn("delete employee not found", zap.String("emp_id", empID))
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := s.writeLifecycleEvent(ctx, tx, events.TypeEmployeeDeleted, empID, managerID, rid); err != nil {
		s.logger.Error("delete employee outbox write failed", zap.Error(err))
		return apperror.Store(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return apperror.Store(err)
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("emp_id", empID),
	)
	return nil
}

func (s *service) writeLifecycleEvent(
	ctx context.Context,
	tx *sql.Tx,
	eventType, empID, managerID, requestID string,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  requestID,
		EmpID:      empID,
		ManagerID:  managerID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "employee",
		AggregateID:   empID,
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
