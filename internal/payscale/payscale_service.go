package payscale

import (
	"context"
	"errors"

	payscaleerrors "emp-portal/internal/payscale/errors"
	"emp-portal/internal/shared/apperror"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type Service interface {
	GetSlip(ctx context.Context, empID string) (*Payscale, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payscale.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payscale.service")
	}
	return &service{repo: repo, sf: &singleflight.Group{}, logger: l}
}

// GetSlip collapses concurrent lookups for the same EmpId into one round
// trip; payslip pages tend to hammer this endpoint on load.
func (s *service) GetSlip(ctx context.Context, empID string) (*Payscale, error) {
	v, err, _ := s.sf.Do(empID, func() (any, error) {
		return s.repo.FindByEmpID(ctx, empID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("salary slip not found", zap.String("emp_id", empID))
			return nil, payscaleerrors.ErrSalarySlipNotFound
		}
		s.logger.Error("salary slip fetch failed", zap.String("emp_id", empID), zap.Error(err))
		return nil, apperror.Store(err)
	}

	return v.(*Payscale), nil
}
