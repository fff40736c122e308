package profile

import (
	"errors"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	if err := ValidateUsername(""); !errors.Is(err, ErrInvalidUsername) {
		t.Errorf("Expected ErrInvalidUsername for empty username, got %v", err)
	}

	if err := ValidateUsername("80alaajutt"); err != nil {
		t.Errorf("Unexpected error for valid username: %v", err)
	}
}

func TestValidateUsername_Message(t *testing.T) {
	err := ValidateUsername("")
	if err.Error() != "Invalid TikTok username provided." {
		t.Errorf("Unexpected error message: %q", err.Error())
	}
}

func TestProfileURL(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{"80alaajutt", "https://www.tiktok.com/@80alaajutt"},
		{"charlidamelio", "https://www.tiktok.com/@charlidamelio"},
	}

	for _, tt := range tests {
		if got := ProfileURL(tt.username); got != tt.want {
			t.Errorf("ProfileURL(%q) = %q, want %q", tt.username, got, tt.want)
		}
	}
}

func TestProfileHost(t *testing.T) {
	host, err := ProfileHost("80alaajutt")
	if err != nil {
		t.Fatalf("ProfileHost failed: %v", err)
	}
	if host != "www.tiktok.com" {
		t.Errorf("Expected host www.tiktok.com, got %q", host)
	}
}
