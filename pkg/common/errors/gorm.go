package errors

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// WrapGormError translates GORM and MySQL driver errors into the domain
// taxonomy so handlers never have to know which backend is configured.
func WrapGormError(rawErr error) error {
	if rawErr == nil {
		return nil
	}

	switch {
	case errors.Is(rawErr, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(rawErr, gorm.ErrDuplicatedKey):
		return ErrConflict
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(rawErr, &mysqlErr) {
		switch mysqlErr.Number {
		case 1062: // unique constraint violation
			return ErrConflict
		case 1045, 1049, 1146: // access denied, unknown database, missing table
			return fmt.Errorf("%w: %s", ErrStorageInternal, mysqlErr.Message)
		}
	}

	return fmt.Errorf("%w: %v", ErrStorageInternal, rawErr)
}
