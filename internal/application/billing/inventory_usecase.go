package billing

import (
	"github.com/billora/billora-api/internal/application/dto"
	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/repository"
)

// InventoryUseCase exposes the read-only stock snapshot that document
// editing builds its availability checks on.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase builds the use case.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Snapshot returns the full catalog with current quantities.
func (uc *InventoryUseCase) Snapshot() ([]*dto.InventoryItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToInventoryItemResponse(it))
	}
	return out, nil
}

// Get returns a single catalog item.
func (uc *InventoryUseCase) Get(id string) (*dto.InventoryItemResponse, error) {
	it, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToInventoryItemResponse(it), nil
}
