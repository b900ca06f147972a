package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/billora/billora-api/internal/application/dto"
	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/repository"
)

// CompanyUseCase manages the single seller profile printed on documents.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Profile returns the seller profile, or ErrNotFound before first setup.
func (uc *CompanyUseCase) Profile() (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetProfile()
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCompanyResponse(company), nil
}

// Save creates or replaces the seller profile.
func (uc *CompanyUseCase) Save(in dto.CompanyPayload) (*dto.CompanyResponse, error) {
	if err := dto.Check(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	company, err := uc.repo.GetProfile()
	if err != nil {
		return nil, err
	}
	if company == nil {
		company = &entity.Company{ID: uuid.NewString(), CreatedAt: now}
	}
	company.Name = in.Name
	company.VATNumber = in.VATNumber
	company.Address = in.Address
	company.Phone = in.Phone
	company.Email = in.Email
	company.UpdatedAt = now

	if err := uc.repo.SaveProfile(company); err != nil {
		return nil, err
	}
	return dto.ToCompanyResponse(company), nil
}
