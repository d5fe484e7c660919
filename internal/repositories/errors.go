package repositories

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// IsNotFound reports whether err means the requested row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsConstraintViolation reports whether err is a unique, primary key or
// foreign key violation. Postgres errors arrive translated by GORM; SQLite
// errors are also matched on the driver's extended codes. SQLite reports an
// ON DELETE RESTRICT rejection as a trigger constraint, not a foreign key one.
func IsConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey,
			sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintTrigger:
			return true
		}
	}
	return false
}
