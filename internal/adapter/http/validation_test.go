package http

import (
	"strings"
	"testing"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestHex32Validation(t *testing.T) {
	type P struct {
		DocID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{DocID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{DocID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "DocID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		FloorArea float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{0, 100, 150.5, 99.99} {
		if err := cv.Validate(P{FloorArea: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{0.001, 123.456, 99.999} {
		err := cv.Validate(P{FloorArea: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "FloorArea", "at most 2 decimal places") {
			t.Fatalf("expected dec2 message for %v, got: %+v", v, fe)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	type P struct {
		Name  string  `validate:"required"`
		Email string  `validate:"required,email"`
		Size  int     `validate:"gte=1"`
		Area  float64 `validate:"gt=0,dec2"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Email: "not-an-email", Size: 0, Area: -3})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing required message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Email", "valid email") {
		t.Fatalf("missing email message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Size", "greater than or equal to 1") {
		t.Fatalf("missing gte message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Area", "greater than 0") {
		t.Fatalf("missing gt message: %+v", fe)
	}
}
