package domain

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

// CanAccess reports whether the actor may see a record owned by ownerID.
func (a Actor) CanAccess(ownerID string) bool {
	return a.IsAdmin() || (a.UserID != "" && a.UserID == ownerID)
}
