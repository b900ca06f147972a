package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is the stock record read at editing-session start. The engine
// never mutates it; stock is debited server-side on save.
type InventoryItem struct {
	ID        string
	SKU       string
	Name      string
	Quantity  int64 // available stock at load time
	SellPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
