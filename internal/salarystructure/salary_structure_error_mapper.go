package salarystructure

import (
	"errors"

	salarystructureerrors "github.com/Iamvlnmurthy/pepl/internal/salarystructure/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarystructureerrors.ErrSalaryStructureNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_salary_structure_active" {
			return salarystructureerrors.ErrActiveStructureExists
		}
	}

	return err
}
