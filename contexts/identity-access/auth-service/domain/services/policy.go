package services

import (
	"strings"

	"classbay/contexts/identity-access/auth-service/domain/entities"
)

// Action names an operation a principal may attempt against a resource.
type Action string

const (
	ActionReadOrder     Action = "order.read"
	ActionWriteOrder    Action = "order.write"
	ActionDownloadFile  Action = "file.download"
	ActionAdminDownload Action = "file.admin_download"
)

// Resource is the ownership surface a policy decision is evaluated against.
type Resource struct {
	OwnerID string
}

// Policy is the single authorization decision point. It is a pure value:
// decisions depend only on the principal, the action, and the resource owner.
type Policy struct {
	adminIdentities map[string]struct{}
}

// NewPolicy builds a policy with an allow-list of admin principal ids/emails.
// The allow-list supplements the "admin" role claim, it does not replace it.
func NewPolicy(adminIdentities []string) Policy {
	allow := make(map[string]struct{}, len(adminIdentities))
	for _, identity := range adminIdentities {
		identity = strings.ToLower(strings.TrimSpace(identity))
		if identity != "" {
			allow[identity] = struct{}{}
		}
	}
	return Policy{adminIdentities: allow}
}

// IsAdmin reports whether the principal carries the admin role claim or is
// allow-listed by id or email.
func (p Policy) IsAdmin(principal entities.Principal) bool {
	if principal.IsZero() {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(principal.Role), "admin") {
		return true
	}
	if _, ok := p.adminIdentities[strings.ToLower(principal.ID)]; ok {
		return true
	}
	if _, ok := p.adminIdentities[strings.ToLower(strings.TrimSpace(principal.Email))]; ok {
		return true
	}
	return false
}

// IsOwner reports whether the principal owns the resource.
func (p Policy) IsOwner(principal entities.Principal, ownerID string) bool {
	if principal.IsZero() || strings.TrimSpace(ownerID) == "" {
		return false
	}
	return principal.ID == ownerID
}

// Can evaluates a single permission decision.
func (p Policy) Can(principal entities.Principal, action Action, resource Resource) bool {
	switch action {
	case ActionAdminDownload:
		return p.IsAdmin(principal)
	case ActionReadOrder, ActionWriteOrder, ActionDownloadFile:
		return p.IsOwner(principal, resource.OwnerID)
	default:
		return false
	}
}
