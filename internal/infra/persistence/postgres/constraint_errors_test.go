package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationClassification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		unique bool
		fk     bool
		check  bool
	}{
		{"gorm duplicated key", errors.Wrap(gorm.ErrDuplicatedKey, "insert"), true, false, false},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, false, true, false},
		{"gorm check", gorm.ErrCheckConstraintViolated, false, false, true},
		{"pg unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true, false, false},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, false, true, false},
		{"pg check", &pgconn.PgError{Code: "23514"}, false, false, true},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"), true, false, false},
		{"sqlite foreign key", errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), false, true, false},
		{"unrelated", errors.New("connection refused"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.fk, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
