package middleware

import (
	"errors"
	"net/http"

	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	orgdomain "github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/handler/http/response"
)

// OrgHeader names the tenant selector header sent on every org-scoped call.
const OrgHeader = "x-org-id"

// RequireOrg gates tenant-scoped routes: the x-org-id header must be present,
// must match the caller's org claim, and the org must exist and be active.
func RequireOrg(orgService orgdomain.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromRequest(r)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			orgID := r.Header.Get(OrgHeader)
			if orgID == "" {
				response.HandleError(w, user.ErrOrgIDRequired)
				return
			}
			if identity.OrgID == "" || identity.OrgID != orgID {
				response.HandleError(w, orgdomain.ErrNotOrgMember)
				return
			}

			o, err := orgService.Get(r.Context(), orgID)
			if err != nil {
				if errors.Is(err, orgdomain.ErrOrgNotFound) {
					response.HandleError(w, orgdomain.ErrOrgNotFound)
					return
				}
				response.HandleError(w, err)
				return
			}
			if !o.IsActive {
				response.HandleError(w, orgdomain.ErrOrgInactive)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
