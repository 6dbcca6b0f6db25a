package services

import (
	"testing"

	"classbay/contexts/identity-access/auth-service/domain/entities"
)

func TestIsAdminByRoleClaim(t *testing.T) {
	policy := NewPolicy(nil)

	if !policy.IsAdmin(entities.Principal{ID: "u1", Role: "admin"}) {
		t.Fatalf("role claim admin must grant admin")
	}
	if !policy.IsAdmin(entities.Principal{ID: "u1", Role: "Admin"}) {
		t.Fatalf("role claim comparison must be case-insensitive")
	}
	if policy.IsAdmin(entities.Principal{ID: "u1", Role: "authenticated"}) {
		t.Fatalf("non-admin role must not grant admin")
	}
	if policy.IsAdmin(entities.Principal{}) {
		t.Fatalf("zero principal must never be admin")
	}
}

func TestIsAdminByAllowList(t *testing.T) {
	policy := NewPolicy([]string{"ops@classbay.io", "User-42"})

	if !policy.IsAdmin(entities.Principal{ID: "user-42", Role: "authenticated"}) {
		t.Fatalf("allow-listed id must grant admin")
	}
	if !policy.IsAdmin(entities.Principal{ID: "u1", Email: "ops@classbay.io"}) {
		t.Fatalf("allow-listed email must grant admin")
	}
	if policy.IsAdmin(entities.Principal{ID: "u1", Email: "someone@classbay.io"}) {
		t.Fatalf("unlisted identity must not grant admin")
	}
}

func TestCanOwnerScopedActions(t *testing.T) {
	policy := NewPolicy(nil)
	owner := entities.Principal{ID: "u1", Role: "authenticated"}
	other := entities.Principal{ID: "u2", Role: "authenticated"}

	if !policy.Can(owner, ActionDownloadFile, Resource{OwnerID: "u1"}) {
		t.Fatalf("owner must be able to download")
	}
	if policy.Can(other, ActionDownloadFile, Resource{OwnerID: "u1"}) {
		t.Fatalf("non-owner must not be able to download")
	}
	if policy.Can(owner, ActionReadOrder, Resource{}) {
		t.Fatalf("owner-scoped action without an owner must deny")
	}
}

func TestCanAdminDownload(t *testing.T) {
	policy := NewPolicy([]string{"support@classbay.io"})

	if !policy.Can(entities.Principal{ID: "u1", Role: "admin"}, ActionAdminDownload, Resource{}) {
		t.Fatalf("admin role must pass the admin download action")
	}
	if !policy.Can(entities.Principal{ID: "u2", Email: "support@classbay.io"}, ActionAdminDownload, Resource{}) {
		t.Fatalf("allow-listed identity must pass the admin download action")
	}
	if policy.Can(entities.Principal{ID: "u3", Role: "authenticated"}, ActionAdminDownload, Resource{}) {
		t.Fatalf("regular principal must not pass the admin download action")
	}
}
