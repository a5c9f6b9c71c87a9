package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErrUnwrapMatchesSentinels(t *testing.T) {
	err := NewAlreadyExists("collaborator")

	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.True(t, IsConflict(err))
	assert.Equal(t, http.StatusConflict, err.StatusCode)
}

func TestNewDatabaseErrorMapsCommonFailures(t *testing.T) {
	dup := NewDatabaseError("create", "collaborator", errors.New(`duplicate key value violates unique constraint "idx_plant_collaborators_unique"`))
	assert.Equal(t, http.StatusConflict, dup.StatusCode)
	assert.True(t, IsConflict(dup))

	fk := NewDatabaseError("create", "collaborator", errors.New("violates foreign key constraint"))
	assert.Equal(t, http.StatusBadRequest, fk.StatusCode)

	conn := NewDatabaseError("find", "plants", errors.New("connection refused"))
	assert.Equal(t, http.StatusServiceUnavailable, conn.StatusCode)

	generic := NewDatabaseError("find", "plants", errors.New("something else"))
	assert.Equal(t, http.StatusInternalServerError, generic.StatusCode)
}

func TestApiErrErrorIncludesDetails(t *testing.T) {
	err := NewMissingRequiredFieldError("nama_indonesia")

	assert.Contains(t, err.Error(), "nama_indonesia")
	assert.Equal(t, "nama_indonesia", err.Field)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInternalErrorWithCause("wrapper", cause)

	full := err.GetFullError()
	assert.Contains(t, full, "wrapper")
	assert.Contains(t, full, "root cause")
}
