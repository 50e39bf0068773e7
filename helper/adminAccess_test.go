package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestAdminEmails(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "One@a.com, two@b.com ,")
	t.Setenv("ADMIN_STATIC_EMAIL", "Root@c.com")

	emails := AdminEmails()
	assert.Equal(t, []string{"one@a.com", "two@b.com", "root@c.com"}, emails)
}

func TestAdminEmailsStaticNotDuplicated(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "root@c.com")
	t.Setenv("ADMIN_STATIC_EMAIL", "Root@c.com")

	assert.Equal(t, []string{"root@c.com"}, AdminEmails())
}

func TestIsAdminEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "admin@cravecart.in")
	t.Setenv("ADMIN_STATIC_EMAIL", "")

	assert.True(t, IsAdminEmail("Admin@CraveCart.in"))
	assert.False(t, IsAdminEmail("user@example.com"))
}
