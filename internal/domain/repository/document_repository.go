package repository

import "github.com/billora/billora-api/internal/domain/entity"

// DocumentRepository persists document headers together with their line
// items. GetByID hydrates the full item list in insertion order.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	Update(doc *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	ListByKind(kind entity.DocumentKind, limit, offset int) ([]*entity.Document, error)
	// UpdateStatus persists only the status column. It is deliberately a
	// separate call from transaction creation; the settlement flow surfaces
	// the partial-failure mode instead of pretending atomicity.
	UpdateStatus(id, status string) error
}
