package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: Not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}

	detailed := simple.WithDetails(map[string]string{"name": "required"})
	if simple.Details != nil {
		t.Fatalf("WithDetails must not mutate the receiver")
	}
	body := detailed.ToHTTPError()
	if body.Code != "NOT_FOUND" || body.Details == nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}
