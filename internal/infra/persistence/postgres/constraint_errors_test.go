package postgres

import (
	"testing"

	"ogfinder/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("duplicate")))
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23505"}))
}

func TestIsConnectionFailure(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "08006", want: true},
		{code: "08001", want: true},
		{code: "53300", want: true},
		{code: "57P01", want: true},
		{code: "57014", want: false},
		{code: "23505", want: false},
		{code: "42601", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, isConnectionFailure(&pgconn.PgError{Code: tt.code}))
		})
	}

	assert.False(t, isConnectionFailure(errors.New("boom")))
}
