package model

// Scope is the authenticated caller attached to a request.
type Scope struct {
	UserID   string
	Username string
	Role     string
}
