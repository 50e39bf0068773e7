package helper

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendMail sends a plain-text mail through the SMTP server configured via
// SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS. Used for password-reset links.
func SendMail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")

	if host == "" || port == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := []byte("From: " + user + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}

	return smtp.SendMail(host+":"+port, auth, user, []string{to}, msg)
}
