package dto

import (
	"github.com/shopspring/decimal"

	"github.com/billora/billora-api/internal/domain/entity"
)

// InventoryItemResponse is one stock record of the snapshot.
type InventoryItemResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	SellPrice decimal.Decimal `json:"sellPrice"`
}

// ToInventoryItemResponse maps the entity.
func ToInventoryItemResponse(it *entity.InventoryItem) *InventoryItemResponse {
	return &InventoryItemResponse{
		ID:        it.ID,
		SKU:       it.SKU,
		Name:      it.Name,
		Quantity:  it.Quantity,
		SellPrice: it.SellPrice,
	}
}
