package session

import "testing"

func TestIssueAndValidate(t *testing.T) {
	svc := New()

	id := svc.Issue()
	if id == "" {
		t.Fatalf("expected a session id")
	}
	if err := svc.Validate(id); err != nil {
		t.Fatalf("issued id must validate: %v", err)
	}
	if other := svc.Issue(); other == id {
		t.Fatalf("session ids must be unique")
	}
}

func TestValidateRejectsArbitraryValues(t *testing.T) {
	svc := New()
	for _, bad := range []string{"", "not-a-uuid", "1234", "../../etc/passwd"} {
		if err := svc.Validate(bad); err == nil {
			t.Fatalf("expected rejection for %q", bad)
		}
	}
}
