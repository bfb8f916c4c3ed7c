package storage

import (
	"strings"
	"testing"
)

func TestIsFileExtensionAllowed(t *testing.T) {
	svc := NewService(nil)

	testCases := []struct {
		filename string
		expected bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"avatar.png", true},
		{"avatar.webp", true},
		{"payload.exe", false},
		{"document.pdf", false},
		{"noextension", false},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			if got := svc.IsFileExtensionAllowed(tc.filename); got != tc.expected {
				t.Errorf("IsFileExtensionAllowed(%q) = %v; want %v", tc.filename, got, tc.expected)
			}
		})
	}
}

func TestGenerateKeyName(t *testing.T) {
	svc := NewService(nil)

	key := svc.GenerateKeyName()
	if len(key) != 16 {
		t.Errorf("GenerateKeyName() length = %d; want 16", len(key))
	}
	if key != strings.ToLower(key) {
		t.Errorf("GenerateKeyName() = %q; want lowercase", key)
	}
}
