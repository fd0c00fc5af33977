package main

import (
	"fmt"
	"net/url"

	"github.com/pkg/browser"
)

// checkURL accepts only links a browser or mail client should handle.
func checkURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https", "mailto":
		return nil
	default:
		return fmt.Errorf("refusing to open %q scheme", parsed.Scheme)
	}
}

// openURL hands u to the system browser or mail client.
func openURL(u string) error {
	if err := checkURL(u); err != nil {
		return err
	}
	if err := browser.OpenURL(u); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return nil
}
