package billing

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/billora/billora-api/internal/application/dto"
	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/repository"
)

// searchMinLength is the shortest term the resolver reacts to.
const searchMinLength = 2

// CustomerUseCase is the search-as-you-type resolver plus create/update of
// the customer attached to a document.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Search matches term against name, phone and email, case-insensitively.
// Terms shorter than two characters return an empty set without touching
// the store.
func (uc *CustomerUseCase) Search(term string) ([]*dto.CustomerResponse, error) {
	term = strings.TrimSpace(term)
	if len(term) < searchMinLength {
		return []*dto.CustomerResponse{}, nil
	}
	list, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCustomerResponse(c))
	}
	return out, nil
}

// Create validates the mandatory fields and persists a new customer.
func (uc *CustomerUseCase) Create(in dto.CustomerPayload) (*dto.CustomerResponse, error) {
	if err := dto.Check(in); err != nil {
		return nil, err
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		VATNumber: in.VATNumber,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

// Update validates and updates an existing customer.
func (uc *CustomerUseCase) Update(id string, in dto.CustomerPayload) (*dto.CustomerResponse, error) {
	if err := dto.Check(in); err != nil {
		return nil, err
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.FullName = in.FullName
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.VATNumber = in.VATNumber
	customer.Address = in.Address
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

// List pages through all customers.
func (uc *CustomerUseCase) List(page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCustomerResponse(c))
	}
	return out, nil
}

// PrefillGuess maps a failed search term onto the create form: digits-only
// terms look like a phone number, terms with a space like a full name,
// terms with an @ like an email. Applied only when opening the form, never
// over typed data.
func (uc *CustomerUseCase) PrefillGuess(term string) dto.PrefillResponse {
	term = strings.TrimSpace(term)
	if len(term) < searchMinLength {
		return dto.PrefillResponse{}
	}
	if isDigits(term) {
		return dto.PrefillResponse{Phone: term}
	}
	if strings.Contains(term, " ") {
		return dto.PrefillResponse{FullName: term}
	}
	if strings.Contains(term, "@") {
		return dto.PrefillResponse{Email: term}
	}
	return dto.PrefillResponse{}
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
