package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
)

// Identity is the caller as carried by the access token claims.
type Identity struct {
	UserID string
	Email  string
	OrgID  string
	Role   user.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == user.RoleAdmin
}

// IdentityFromRequest extracts the caller identity from the verified token.
// It must only be called behind AuthRequired.
func IdentityFromRequest(r *http.Request) (Identity, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Identity{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, false
	}

	identity := Identity{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if orgID, ok := claims["org_id"].(string); ok {
		identity.OrgID = orgID
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = user.Role(role)
	}
	return identity, true
}
