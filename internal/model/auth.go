package model

import "fmt"

// Auth is the request-scoped identity of a caller.
// It is built once per operation and never cached.
type Auth struct {
	Authenticated bool
	User          *User
}

// Anonymous returns an unauthenticated Auth.
func Anonymous() Auth {
	return Auth{}
}

// Authenticated returns an Auth wrapping user.
func Authenticated(user User) Auth {
	return Auth{Authenticated: true, User: &user}
}

// IsSuperuser reports whether the caller is an authenticated superuser.
func (a Auth) IsSuperuser() bool {
	return a.Authenticated && a.User != nil && a.User.IsSuperuser
}

// UserID returns the caller's user id, or 0 when unauthenticated.
func (a Auth) UserID() int64 {
	if !a.Authenticated || a.User == nil {
		return 0
	}
	return a.User.ID
}

func (a Auth) String() string {
	if !a.Authenticated || a.User == nil {
		return "<Auth authenticated=false>"
	}
	return fmt.Sprintf("<Auth authenticated=true %s>", a.User.Email)
}
