package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "exec failed")
	}

	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
	}{
		{name: "unique sqlstate", err: wrapped("23505"), unique: true},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "foreign key sqlstate", err: wrapped("23503"), foreignKey: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "not null sqlstate", err: wrapped("23502"), notNull: true},
		{name: "other sqlstate", err: wrapped("40001")},
		{name: "plain error", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
