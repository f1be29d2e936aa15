package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "emp-portal/internal/auth/errors"
	"emp-portal/internal/employee"
	"emp-portal/internal/manager"
	"emp-portal/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const accessTokenTTL = 24 * time.Hour

type Service interface {
	Login(ctx context.Context, userID, password, role string) (LoginResult, error)
}

type service struct {
	managers  manager.Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(managers manager.Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{managers: managers, employees: employees, logger: l}
}

func (s *service) Login(ctx context.Context, userID, password, role string) (LoginResult, error) {
	s.logger.Debug("login attempt", zap.String("user_id", userID), zap.String("role", role))

	var (
		stored    string
		dashboard string
		err       error
	)

	switch role {
	case RoleManager:
		var m *manager.Manager
		m, err = s.managers.FindByID(ctx, userID)
		if err == nil {
			stored = m.Password
		}
		dashboard = "manager-dashboard.html"
	case RoleEmployee:
		var e *employee.Employee
		e, err = s.employees.FindByID(ctx, userID)
		if err == nil {
			stored = e.Password
		}
		dashboard = "employee-dashboard.html"
	default:
		s.logger.Warn("login invalid role", zap.String("role", role))
		return LoginResult{}, autherrors.ErrInvalidRole
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("login user not found", zap.String("user_id", userID))
			return LoginResult{Outcome: OutcomeUserNotFound}, nil
		}
		s.logger.Error("login credential lookup failed", zap.Error(err))
		return LoginResult{}, apperror.Store(err)
	}

	if !verifyPassword(stored, password) {
		s.logger.Info("login incorrect password", zap.String("user_id", userID))
		return LoginResult{Outcome: OutcomeWrongPassword}, nil
	}

	token, err := generateToken(userID, role, accessTokenTTL)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return LoginResult{}, apperror.Store(err)
	}

	s.logger.Info("login success", zap.String("user_id", userID), zap.String("role", role))
	return LoginResult{
		Outcome:     OutcomeSuccess,
		Dashboard:   dashboard,
		AccessToken: token,
	}, nil
}

// verifyPassword accepts bcrypt-hashed credentials; stored values without a
// bcrypt prefix are legacy plaintext rows and compare by equality, which is
// the behavior the existing data depends on. cmd/hashgen produces hashes
// for migrated rows.
func verifyPassword(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}

func generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
