package employee

import (
	"errors"
	"net/http"

	employeeerrors "emp-portal/internal/employee/errors"
	"emp-portal/internal/shared/apperror"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlErrDuplicateEntry = 1062

// mapRepositoryError classifies a store failure from the employee table.
// A duplicate-key failure at insert time means another request won the
// add-employee race after our existence check passed; that window is
// answered as a server error, not as the pre-check's 400.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return apperror.Wrap(
			err,
			apperror.CodeConflict,
			"Failed to add employee. Please try again later.",
			http.StatusInternalServerError,
		)
	}

	return err
}
