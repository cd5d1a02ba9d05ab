package storage

import (
	"errors"

	"gorm.io/gorm"
)

// Owned is implemented by every row type that belongs to a single user.
type Owned interface {
	OwnedBy(userID uint) bool
}

// FindOwned loads the row with the given primary key into dest and checks it
// belongs to userID. Every owner-scoped mutation goes through this guard so
// foreign rows surface as typed errors instead of silent zero-row updates.
func FindOwned(dest Owned, id, userID uint) error {
	if err := DB.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !dest.OwnedBy(userID) {
		return ErrNotOwner
	}
	return nil
}
