package leave

import (
	"context"
	"database/sql"
	"net/http"

	leaveerrors "emp-portal/internal/leave/errors"
	"emp-portal/internal/manager"
	"emp-portal/internal/shared/apperror"
	"emp-portal/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) error
	ListAll(ctx context.Context, managerID string) ([]LeaveRequestDetail, error)
	UpdateStatus(ctx context.Context, managerID, requestID, status string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	managers manager.Repository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, managers manager.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, managers: managers, logger: l}
}

// Submit inserts the request with Status "Pending". EmpId existence is
// deliberately not checked; orphaned requests simply never show up in the
// manager listing join.
func (s *service) Submit(ctx context.Context, req SubmitLeaveRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("emp_id", req.EmpID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return submitStoreError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr := &LeaveRequest{
		EmpID:     req.EmpID,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    StatusPending,
	}

	if err := qtx.Create(ctx, lr); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return submitStoreError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return submitStoreError(err)
	}

	s.logger.Info("submit leave success",
		zap.String("request_id", rid),
		zap.String("emp_id", req.EmpID),
	)
	return nil
}

// ListAll gates on manager existence, then returns every leave request in
// the system; ManagerId does not scope the result. The consumers rely on
// that, so the filter is deliberately absent.
func (s *service) ListAll(ctx context.Context, managerID string) ([]LeaveRequestDetail, error) {
	s.logger.Debug("list leave requests", zap.String("manager_id", managerID))

	exists, err := s.managers.Exists(ctx, managerID)
	if err != nil {
		s.logger.Error("list leave manager check failed", zap.Error(err))
		return nil, apperror.Store(err)
	}
	if !exists {
		s.logger.Warn("list leave unknown manager", zap.String("manager_id", managerID))
		return nil, leaveerrors.ErrUnknownManager
	}

	details, err := s.repo.FindAllWithEmployee(ctx)
	if err != nil {
		s.logger.Error("list leave fetch failed", zap.Error(err))
		return nil, apperror.Store(err)
	}

	s.logger.Debug("list leave success", zap.Int("count", len(details)))
	return details, nil
}

// UpdateStatus applies the supplied Status verbatim. A request deleted
// between the manager gate and the update degrades to "not found".
func (s *service) UpdateStatus(ctx context.Context, managerID, requestID, status string) error {
	s.logger.Debug("update leave status requested",
		zap.String("manager_id", managerID),
		zap.String("leave_request_id", requestID),
		zap.String("target_status", status),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave begin tx failed", zap.Error(err))
		return updateStoreError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := s.managers.Exists(ctx, managerID)
	if err != nil {
		s.logger.Error("update leave manager check failed", zap.Error(err))
		return apperror.Store(err)
	}
	if !exists {
		s.logger.Warn("update leave unknown manager", zap.String("manager_id", managerID))
		return leaveerrors.ErrUnknownManager
	}

	rows, err := qtx.UpdateStatus(ctx, requestID, status)
	if err != nil {
		s.logger.Error("update leave persist failed", zap.Error(err))
		return updateStoreError(err)
	}
	if rows == 0 {
		s.logger.Warn("update leave request not found", zap.String("leave_request_id", requestID))
		return leaveerrors.ErrLeaveRequestNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave commit failed", zap.Error(err))
		return updateStoreError(err)
	}

	s.logger.Info("update leave status success",
		zap.String("leave_request_id", requestID),
		zap.String("status", status),
	)
	return nil
}

func submitStoreError(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeStoreError,
		"Failed to submit leave request. Please try again later.",
		http.StatusInternalServerError,
	)
}

func updateStoreError(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeStoreError,
		"Failed to update leave request. Please try again later.",
		http.StatusInternalServerError,
	)
}
