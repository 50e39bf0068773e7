package helper

import (
	"os"
	"strings"
)

// NormalizeEmail lowercases and trims an email for comparison and storage.
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// AdminEmails returns the allow-list of admin emails: ADMIN_EMAILS (comma
// separated) plus ADMIN_STATIC_EMAIL.
func AdminEmails() []string {
	var emails []string
	for _, e := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if n := NormalizeEmail(e); n != "" {
			emails = append(emails, n)
		}
	}

	static := NormalizeEmail(os.Getenv("ADMIN_STATIC_EMAIL"))
	if static != "" {
		found := false
		for _, e := range emails {
			if e == static {
				found = true
				break
			}
		}
		if !found {
			emails = append(emails, static)
		}
	}
	return emails
}

// IsAdminEmail reports whether email is on the admin allow-list.
func IsAdminEmail(email string) bool {
	n := NormalizeEmail(email)
	for _, e := range AdminEmails() {
		if e == n {
			return true
		}
	}
	return false
}

// StaticAdminCredentials returns the bootstrap admin login, if configured.
func StaticAdminCredentials() (email, password string) {
	return NormalizeEmail(os.Getenv("ADMIN_STATIC_EMAIL")), os.Getenv("ADMIN_STATIC_PASSWORD")
}
