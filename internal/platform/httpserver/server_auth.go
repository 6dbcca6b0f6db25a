package httpserver

import (
	"net/http"

	"classbay/contexts/identity-access/auth-service/application/queries"
	authentities "classbay/contexts/identity-access/auth-service/domain/entities"
)

// authenticate resolves the request's bearer token to a principal. Each
// route area maps the error into its own response shape.
func (s *Server) authenticate(r *http.Request) (authentities.Principal, error) {
	return s.auth.Authenticate.Execute(r.Context(), queries.AuthenticateQuery{
		AuthorizationHeader: r.Header.Get("Authorization"),
	})
}
