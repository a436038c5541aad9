package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	u, err := CreateUser("Jamie Doe", "jamie@example.com", "secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.Equal(t, RoleUser, u.Role)
	assert.True(t, u.IsActive())
}

func TestCreateUserValidation(t *testing.T) {
	_, err := CreateUser("ab", "jamie@example.com", "secret123")
	assert.Error(t, err)

	_, err = CreateUser("Jamie Doe", "not-an-email", "secret123")
	assert.Error(t, err)

	_, err = CreateUser("Jamie Doe", "jamie@example.com", "short")
	assert.Error(t, err)
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleAdmin.Can(CapManageCatalog))
	assert.True(t, RoleAdmin.Can(CapReviewTrainers))
	assert.True(t, RoleAdmin.Can(CapReceiveAdminFan))

	assert.False(t, RoleUser.Can(CapManageCatalog))
	assert.False(t, RoleTrainer.Can(CapManageOrders))
	assert.False(t, Role("superuser").Can(CapManageCatalog))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleTrainer.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())
}
