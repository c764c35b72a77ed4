package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	t.Run("Accepts every known role", func(t *testing.T) {
		for _, role := range AllRoles {
			parsed, err := ParseRole(role.String())
			assert.NoError(t, err, "role %q should parse", role)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("Rejects unknown role", func(t *testing.T) {
		for _, raw := range []string{"", "superadmin", "Customer", "doctor ", "nurse"} {
			_, err := ParseRole(raw)
			assert.Error(t, err, "raw value %q should not parse", raw)
		}
	})
}

func TestRoleValid(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, role.Valid(), "role %q should be valid", role)
	}
	assert.False(t, Role("guest").Valid())
}

func TestAllRolesIsClosed(t *testing.T) {
	assert.Len(t, AllRoles, 6, "the role set is closed at six variants")

	seen := make(map[Role]bool)
	for _, role := range AllRoles {
		assert.False(t, seen[role], "role %q listed twice", role)
		seen[role] = true
	}
}
