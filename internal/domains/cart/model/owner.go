package model

import (
	"github.com/google/uuid"
)

// Owner identifies who a cart belongs to: an authenticated user or an
// anonymous guest, never both. The fields are unexported so the
// exclusivity holds structurally; build values with UserOwner/GuestOwner.
type Owner struct {
	userID  uuid.UUID
	guestID string
}

func UserOwner(userID uuid.UUID) Owner {
	return Owner{userID: userID}
}

func GuestOwner(guestID string) Owner {
	return Owner{guestID: guestID}
}

func (o Owner) IsUser() bool {
	return o.userID != uuid.Nil
}

func (o Owner) IsGuest() bool {
	return o.userID == uuid.Nil && o.guestID != ""
}

func (o Owner) IsZero() bool {
	return o.userID == uuid.Nil && o.guestID == ""
}

func (o Owner) UserID() uuid.UUID {
	return o.userID
}

func (o Owner) GuestID() string {
	return o.guestID
}

// Key is the store index for this owner. User and guest identities live
// in separate namespaces, so a guest id that happens to collide with a
// user id can never address the user's cart.
func (o Owner) Key() string {
	if o.IsUser() {
		return "user:" + o.userID.String()
	}
	return "guest:" + o.guestID
}
