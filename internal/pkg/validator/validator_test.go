package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-03"); !ok {
		t.Error(`IsValidDate("2025-03-03") = false, want true`)
	}
	invalid := []string{"2025-13-01", "2025-02-30", "03/03/2025", "2025-3-3", ""}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2025-03-03T09:00:00Z", "2025-03-03T09:00:00+07:00", "2025-03-03T09:00:00.123Z"}
	invalid := []string{"2025-03-03", "09:00:00", "2025-03-03 09:00:00", ""}
	for _, ts := range valid {
		if _, ok := IsValidDateTime(ts); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", ts)
		}
	}
	for _, ts := range invalid {
		if _, ok := IsValidDateTime(ts); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", ts)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"acme", "pulse-demo", "a1b", "team-42"}
	invalid := []string{"ab", "-leading", "UPPER", "has space", "with_underscore", ""}
	for _, slug := range valid {
		if !IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = false, want true", slug)
		}
	}
	for _, slug := range invalid {
		if IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = true, want false", slug)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}

	if got := errs.Error(); got != "email: email is required; password: password is required" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["email"] != "email is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
