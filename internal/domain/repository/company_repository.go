package repository

import "github.com/billora/billora-api/internal/domain/entity"

// CompanyRepository holds the single seller profile used on rendered
// documents.
type CompanyRepository interface {
	GetProfile() (*entity.Company, error)
	SaveProfile(company *entity.Company) error
}
