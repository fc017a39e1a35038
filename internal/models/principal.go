package models

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	ID      int64
	IsAdmin bool
}

// CanAccess reports whether the caller may act on data belonging to the
// given customer. Admins may act on anyone, customers only on themselves.
func (p Principal) CanAccess(customerID int64) bool {
	return p.IsAdmin || p.ID == customerID
}
