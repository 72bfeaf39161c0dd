package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jsaputra/taskboard-api/internal/api/shared"
)

// RequireOwner gates routes whose {id} path parameter names a user-owned
// resource. The authenticated identity must match the path identifier;
// a valid session for a different account is Forbidden, not Unauthorized:
// the requester is known but not entitled.
//
// Must run after Authenticate.
func RequireOwner(paramName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r)
			if !ok {
				// Authenticate did not run or did not populate the context.
				shared.RespondWithError(w, r, http.StatusUnauthorized, msgMissingToken)
				return
			}

			targetID, err := uuid.Parse(chi.URLParam(r, paramName))
			if err != nil {
				shared.RespondWithError(w, r, http.StatusBadRequest, "invalid resource ID")
				return
			}

			if userID != targetID {
				shared.RespondWithError(w, r, http.StatusForbidden,
					"you are not the owner of this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
