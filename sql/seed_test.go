package sql_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// The seed migration documents the bootstrap admin password; a fresh
// deployment has no other credential, so the committed hash must actually
// verify against it.
func TestSeedAdminHashMatchesDocumentedPassword(t *testing.T) {
	contents, err := os.ReadFile("00002_seed_admin.sql")
	assert.NoError(t, err)

	hashPattern := regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`)
	hash := hashPattern.Find(contents)
	assert.NotNil(t, hash, "seed migration must contain a bcrypt hash")

	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("change-me-now")))
}
