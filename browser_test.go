package main

import "testing"

func TestCheckURL(t *testing.T) {
	tests := []struct {
		url string
		ok  bool
	}{
		{"https://github.com/Zahin-Mohammad-plug", true},
		{"http://example.com", true},
		{"mailto:hello@zahin.org", true},
		{"file:///etc/passwd", false},
		{"javascript:alert(1)", false},
		{"", false},
		{"://bad", false},
	}
	for _, tt := range tests {
		err := checkURL(tt.url)
		if (err == nil) != tt.ok {
			t.Errorf("checkURL(%q) = %v, want ok=%v", tt.url, err, tt.ok)
		}
	}
}
