package usecase

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase untouched", "user@example.com", "user@example.com"},
		{"domain lowered", "user@Example.COM", "user@example.com"},
		{"local part verbatim", "UsEr@EXAMPLE.com", "UsEr@example.com"},
		{"split at last at", `"odd@local"@Example.COM`, `"odd@local"@example.com`},
		{"no at returned unchanged", "Not-An-Email", "Not-An-Email"},
		{"whitespace trimmed", "  user@Example.com  ", "user@example.com"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeEmail(tc.input); got != tc.want {
				t.Fatalf("NormalizeEmail(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b", "user@example.com", `"a@b"@example.com`}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "@example.com", "user@", "user name@example.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("1234") {
		t.Error("expected four characters to fail")
	}
	if !ValidatePassword("12345") {
		t.Error("expected five characters to pass")
	}
	if !ValidatePassword("a much longer passphrase") {
		t.Error("expected long password to pass")
	}
}
