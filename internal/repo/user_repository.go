package repo

import "github.com/rogerio-castellano/inventory-ledger/internal/models"

// UserRepository backs the login boundary. The domain layer never touches
// users.
type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}
