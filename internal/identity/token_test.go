package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestIssueAndParse(t *testing.T) {
	user := &models.User{ID: 12, BarbershopID: 3, Role: "owner"}

	token, err := Issue("secret", time.Hour, user)
	require.NoError(t, err)

	id, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), id.UserID)
	assert.Equal(t, uint(3), id.BarbershopID)
	assert.Equal(t, "owner", id.Role)
	assert.NotEmpty(t, id.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), id.ExpiresAt, 5*time.Second)
}

func TestParseRejects(t *testing.T) {
	user := &models.User{ID: 1, BarbershopID: 1, Role: "owner"}

	token, err := Issue("secret", time.Hour, user)
	require.NoError(t, err)
	_, err = Parse("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := Issue("secret", -time.Minute, user)
	require.NoError(t, err)
	_, err = Parse("secret", expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = Parse("secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensAreUnique(t *testing.T) {
	user := &models.User{ID: 1, BarbershopID: 1}

	a, err := Issue("secret", time.Hour, user)
	require.NoError(t, err)
	b, err := Issue("secret", time.Hour, user)
	require.NoError(t, err)

	ida, _ := Parse("secret", a)
	idb, _ := Parse("secret", b)
	assert.NotEqual(t, ida.TokenID, idb.TokenID)
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithContext(context.Background(), Identity{UserID: 5, BarbershopID: 2})
	id, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(5), id.UserID)
}
