package contracts

import "vitalis-service/internal/app/models"

// IdentityProvider supplies the display identity for a new account. The
// mock implementation synthesizes a deterministic name from the role
// when the caller supplies none; a real identity provider would verify
// the name against an external source instead. The session manager
// never synthesizes identities itself.
type IdentityProvider interface {
	DisplayName(role models.Role, requestedName string) string
}
