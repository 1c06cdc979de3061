package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-portal/app/models"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	want := Identity{Role: models.RoleStudent, ID: 7, Name: "Alice"}

	token, err := GenerateSessionToken(want)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSessionTokenTeacherRole(t *testing.T) {
	token, err := GenerateSessionToken(Identity{Role: models.RoleTeacher, ID: 3, Name: "Mr. Smith"})
	require.NoError(t, err)

	got, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, got.Role)
	assert.Equal(t, 3, got.ID)
}

func TestSessionTokenTampered(t *testing.T) {
	token, err := GenerateSessionToken(Identity{Role: models.RoleStudent, ID: 7, Name: "Alice"})
	require.NoError(t, err)

	_, err = ValidateSessionToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}
