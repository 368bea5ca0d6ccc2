package entity

// Role is the closed set of account roles with a total order:
// USER < ADMIN < SUPERADMIN.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

var roleRank = map[Role]int{
	RoleUser:       0,
	RoleAdmin:      1,
	RoleSuperAdmin: 2,
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above threshold.
// Unknown roles rank below everything.
func (r Role) AtLeast(threshold Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		return false
	}
	tr, ok := roleRank[threshold]
	if !ok {
		return false
	}
	return rr >= tr
}
