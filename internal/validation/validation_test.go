package validation

import (
	"strings"
	"testing"
)

func TestStudent_ValidInput(t *testing.T) {
	in := StudentInput{
		Name:  "  John Doe  ",
		Email: "john@example.com",
		Phone: "5551234567",
	}

	got, errs := Student(in)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if got.Name != "John Doe" {
		t.Errorf("expected trimmed name %q, got %q", "John Doe", got.Name)
	}
	if got.Email != "john@example.com" {
		t.Errorf("unexpected email: %q", got.Email)
	}
}

func TestStudent_OptionalFieldsMayBeEmpty(t *testing.T) {
	got, errs := Student(StudentInput{Name: "Ann Lee"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if got.Address != "" || got.City != "" || got.State != "" || got.Email != "" || got.Phone != "" {
		t.Errorf("expected empty optional fields, got %+v", got)
	}
}

func TestStudent_NameTooShort(t *testing.T) {
	cases := []string{"", "Jo", "  Jo  ", "   "}

	for _, name := range cases {
		_, errs := Student(StudentInput{Name: name})
		if len(errs) != 1 {
			t.Fatalf("name %q: expected exactly one error, got %v", name, errs)
		}
		if errs[0].Param != "name" {
			t.Errorf("name %q: expected error on name, got %q", name, errs[0].Param)
		}
		if errs[0].Msg != "Name minimum 3 characters" {
			t.Errorf("name %q: unexpected message %q", name, errs[0].Msg)
		}
	}
}

func TestStudent_Email(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"", true},
		{"x@example.com", true},
		{"not-an-email", false},
		{"missing@tld@", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		_, errs := Student(StudentInput{Name: "John Doe", Email: tt.email})
		if tt.valid && errs != nil {
			t.Errorf("email %q: unexpected errors %v", tt.email, errs)
		}
		if !tt.valid {
			if len(errs) != 1 || errs[0].Param != "email" || errs[0].Msg != "Invalid email" {
				t.Errorf("email %q: expected single email error, got %v", tt.email, errs)
			}
		}
	}
}

func TestStudent_PhoneBoundaries(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"", true},
		{"123456", false},                 // 6 digits
		{"1234567", true},                 // 7 digits
		{strings.Repeat("9", 15), true},   // 15 digits
		{strings.Repeat("9", 16), false},  // 16 digits
		{"555-123-4567", false},           // non-digits
		{"phone", false},
	}

	for _, tt := range tests {
		_, errs := Student(StudentInput{Name: "John Doe", Phone: tt.phone})
		if tt.valid && errs != nil {
			t.Errorf("phone %q: unexpected errors %v", tt.phone, errs)
		}
		if !tt.valid {
			if len(errs) != 1 || errs[0].Param != "phone" || errs[0].Msg != "Phone: 7-15 digits" {
				t.Errorf("phone %q: expected single phone error, got %v", tt.phone, errs)
			}
		}
	}
}

func TestStudent_AllViolationsReportedTogether(t *testing.T) {
	_, errs := Student(StudentInput{
		Name:  "Jo",
		Email: "nope",
		Phone: "123",
	})

	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}

	// Field declaration order: name, email, phone.
	wantParams := []string{"name", "email", "phone"}
	for i, want := range wantParams {
		if errs[i].Param != want {
			t.Errorf("error %d: expected param %q, got %q", i, want, errs[i].Param)
		}
		if errs[i].Location != "body" {
			t.Errorf("error %d: expected location body, got %q", i, errs[i].Location)
		}
	}
}

func TestErrors_ErrorJoinsMessages(t *testing.T) {
	errs := Errors{
		{Msg: "Name minimum 3 characters", Param: "name", Location: "body"},
		{Msg: "Invalid email", Param: "email", Location: "body"},
	}

	want := "Name minimum 3 characters, Invalid email"
	if errs.Error() != want {
		t.Errorf("expected %q, got %q", want, errs.Error())
	}
}
