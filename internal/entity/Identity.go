package entity

type Role string

const (
	RoleAdmin Role = "admin"
	RoleVoter Role = "voter"
)

// Identity is the authenticated actor of a request. For voters ElectionID
// carries the election the credentials are scoped to; for admins it is zero.
type Identity struct {
	ID         int64
	Role       Role
	ElectionID int64
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }
func (i Identity) IsVoter() bool { return i.Role == RoleVoter }
