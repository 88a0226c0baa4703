package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcrypt/svc/identity"
)

func TestUser_FullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		user     identity.User
		expected string
	}{
		{name: "both names", user: identity.User{Username: "asha", FirstName: "Asha", LastName: "Rao"}, expected: "Asha Rao"},
		{name: "first name only", user: identity.User{Username: "asha", FirstName: "Asha"}, expected: "Asha"},
		{name: "last name only", user: identity.User{Username: "asha", LastName: "Rao"}, expected: "Rao"},
		{name: "falls back to username", user: identity.User{Username: "asha"}, expected: "asha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.user.FullName())
		})
	}
}

func TestUser_HasNationalID(t *testing.T) {
	t.Parallel()

	empty := ""
	envelope := "c29tZXRoaW5n"
	assert.False(t, (&identity.User{}).HasNationalID())
	assert.False(t, (&identity.User{EncryptedNationalID: &empty}).HasNationalID())
	assert.True(t, (&identity.User{EncryptedNationalID: &envelope}).HasNationalID())
}
