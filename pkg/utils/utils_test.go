package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))

	again, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	type signup struct {
		Email string `json:"email" validate:"required,email"`
		Role  string `json:"role,omitempty" validate:"omitempty,oneof=customer courier admin"`
	}

	errs := ValidateStruct(&signup{Email: "not-an-email", Role: "root"})
	require.Len(t, errs, 2)
	assert.Equal(t, "Invalid email format", errs["email"])
	assert.Equal(t, "Must be one of: customer, courier, admin", errs["role"])

	assert.Nil(t, ValidateStruct(&signup{Email: "ok@example.com"}))
	assert.Equal(t, "email: Invalid email format; role: Must be one of: customer, courier, admin", FormatValidationErrors(errs))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("17")
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)

	for _, bad := range []string{"", "0", "-3", "abc", "99999999999999999999"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestResponseError_Shape(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseNotFound(rec, "Order not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Order not found", body["message"])
	assert.Equal(t, "Not Found", body["details"])
}
