package entity

// Role identifies the authenticated user's role as asserted by the auth
// collaborator.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// Session is the process-wide session context: the bearer credential plus
// the display attributes read from it at startup. Components receive it
// through injection instead of reading persisted state ad hoc.
type Session struct {
	Token    string
	FullName string
	Role     Role
}

// Authenticated reports whether a usable bearer credential is present.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// IsAdmin reports whether the session may use the manager surfaces.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
