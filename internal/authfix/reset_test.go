package authfix_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"supafix/internal/authfix"
)

func TestResetPasswordUpdatesMatchingUser(t *testing.T) {
	stub := &stubAuthServer{
		listBody: fmt.Sprintf(
			`{"users":[{"id":"%s","email":"other@x.com"},{"id":"%s","email":"admin@test.com"}]}`,
			idBob, idAlice),
	}
	client := newStubClient(t, stub)

	if err := authfix.ResetPassword(client, "admin@test.com", "Test123456!"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	if len(stub.updates) != 1 {
		t.Fatalf("expected exactly 1 update call, got %d", len(stub.updates))
	}
	if stub.updates[0].ID != idAlice {
		t.Errorf("update issued for wrong user: %s", stub.updates[0].ID)
	}

	var sent map[string]string
	if err := json.Unmarshal([]byte(stub.updates[0].Body), &sent); err != nil {
		t.Fatalf("update body is not JSON: %v", err)
	}
	if sent["password"] != "Test123456!" {
		t.Errorf("expected new password in body, got %v", sent)
	}
}

func TestResetPasswordMatchIsCaseSensitive(t *testing.T) {
	stub := &stubAuthServer{
		listBody: fmt.Sprintf(`{"users":[{"id":"%s","email":"Admin@test.com"}]}`, idAlice),
	}
	client := newStubClient(t, stub)

	err := authfix.ResetPassword(client, "admin@test.com", "Test123456!")
	if !errors.Is(err, authfix.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for case mismatch, got %v", err)
	}
	if len(stub.updates) != 0 {
		t.Fatalf("no update may be issued without an exact match, got %d", len(stub.updates))
	}
}

func TestResetPasswordUserNotFound(t *testing.T) {
	stub := &stubAuthServer{listBody: `{"users":[]}`}
	client := newStubClient(t, stub)

	err := authfix.ResetPassword(client, "missing@test.com", "Test123456!")
	if !errors.Is(err, authfix.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(stub.updates) != 0 {
		t.Fatalf("expected zero update calls, got %d", len(stub.updates))
	}
}

func TestResetPasswordListFailure(t *testing.T) {
	stub := &stubAuthServer{
		listStatus: http.StatusForbidden,
		listBody:   `{"msg":"invalid token"}`,
	}
	client := newStubClient(t, stub)

	err := authfix.ResetPassword(client, "admin@test.com", "Test123456!")
	if err == nil || errors.Is(err, authfix.ErrUserNotFound) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestResetPasswordRejectedUpdate(t *testing.T) {
	stub := &stubAuthServer{
		listBody:     fmt.Sprintf(`{"users":[{"id":"%s","email":"admin@test.com"}]}`, idAlice),
		updateStatus: http.StatusUnprocessableEntity,
	}
	client := newStubClient(t, stub)

	if err := authfix.ResetPassword(client, "admin@test.com", "short"); err == nil {
		t.Fatal("expected the vendor's rejection to surface")
	}
}
