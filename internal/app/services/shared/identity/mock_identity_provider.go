package identity

import (
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
)

// mockIdentityProvider synthesizes display names for accounts created
// without one. Deterministic per role, so repeated registrations with
// the same role get the same synthesized identity.
type mockIdentityProvider struct{}

func NewMockIdentityProvider() contracts.IdentityProvider {
	return &mockIdentityProvider{}
}

func (p *mockIdentityProvider) DisplayName(role models.Role, requestedName string) string {
	if requestedName != "" {
		return requestedName
	}

	switch role {
	case models.RoleCustomer:
		return "Vitalis Member"
	case models.RoleDoctor:
		return "Dr. Vitalis"
	case models.RoleCoach:
		return "Coach Vitalis"
	case models.RoleKitchen:
		return "Vitalis Kitchen"
	case models.RoleDelivery:
		return "Vitalis Courier"
	case models.RoleAdmin:
		return "Vitalis Admin"
	}
	// Role values are validated at the boundary; reaching here is a
	// programming error.
	panic("identity: unknown role " + role.String())
}
