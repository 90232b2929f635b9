package repo

import "github.com/omercengiz/warehouse-pro/internal/models"

// UserRepository is the credential collaborator's store. The inventory core
// never reads or writes through it.
type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}
