package repository

import "github.com/billora/billora-api/internal/domain/entity"

// InventoryRepository reads the stock records a snapshot is built from.
// The engine never writes stock through it.
type InventoryRepository interface {
	List() ([]*entity.InventoryItem, error)
	GetByID(id string) (*entity.InventoryItem, error)
}
