package auth

import "github.com/incluiaqui/incluiaqui-api/internal/models"

// Principal is the authenticated caller, resolved by the auth middleware.
type Principal struct {
	ID     string
	Role   string
	Status string
}

func FromUser(u *models.User) Principal {
	return Principal{ID: u.ID, Role: u.Role, Status: u.Status}
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

func (p Principal) IsOwner() bool {
	return p.Role == models.RoleOwner
}

// CanMutate is the single ownership predicate shared by establishments and
// reviews: the resource owner or an admin may change it, nobody else.
func (p Principal) CanMutate(resourceOwnerID string) bool {
	return p.ID == resourceOwnerID || p.IsAdmin()
}
