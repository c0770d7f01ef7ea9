package entities

// Role is the caller role asserted by the identity provider.
//
// The service trusts the role carried in the verified token; it does not
// re-derive authorization beyond checking the role against each operation.

type Role string

const (
	RoleRequester Role = "requester"
	RoleProvider  Role = "provider"
	RoleAdmin     Role = "admin"
)

// Actor identifies the authenticated caller of an operation. Every usecase
// operation takes it explicitly; there is no ambient session state.
type Actor struct {
	ID   string
	Role Role
}
