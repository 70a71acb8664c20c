package user

import (
	"regexp"

	"shop/internal/core/domain/model/kernel"
)

var pushTokenPattern = regexp.MustCompile(`^(Exponent|Expo)PushToken\[.+\]$`)

// User is the read-only projection of an account that this core needs: identity, role,
// contact address and an optional push token. Accounts themselves are managed elsewhere.
type User struct {
	ID        kernel.UUID
	Name      string
	Email     string
	IsAdmin   bool
	PushToken string
}

func (u User) Actor() kernel.Actor {
	return kernel.Actor{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}

// HasValidPushToken reports whether the stored token matches the push provider's token format.
func (u User) HasValidPushToken() bool {
	return IsValidPushToken(u.PushToken)
}

func IsValidPushToken(token string) bool {
	return pushTokenPattern.MatchString(token)
}
