package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PasswordHashing(t *testing.T) {
	u := &User{Username: "alice"}
	require.NoError(t, u.SetPassword("pw123"))

	assert.NotEqual(t, "pw123", u.Password)
	assert.True(t, u.CheckPassword("pw123"))
	assert.False(t, u.CheckPassword("pw124"))
	assert.False(t, u.CheckPassword(""))
}

func TestUser_CheckPasswordWithoutHash(t *testing.T) {
	assert.False(t, (&User{}).CheckPassword("anything"))
}
