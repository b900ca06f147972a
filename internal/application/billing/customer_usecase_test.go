package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/application/dto"
	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/entity"
)

// fakeCustomerRepo is an in-memory CustomerRepository that records whether
// Search was invoked.
type fakeCustomerRepo struct {
	customers     map[string]*entity.Customer
	searchCalled  bool
	searchResults []*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Search(term string) ([]*entity.Customer, error) {
	f.searchCalled = true
	return f.searchResults, nil
}

func (f *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func validCustomer() dto.CustomerPayload {
	return dto.CustomerPayload{
		FullName:  "Jordan Velez",
		Email:     "jordan@example.com",
		Phone:     "555123",
		VATNumber: "VAT-778",
	}
}

func TestCustomerSearch_ShortTermSkipsStore(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := billing.NewCustomerUseCase(repo)

	got, err := uc.Search("a")

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, repo.searchCalled, "terms under two characters never hit the store")

	_, err = uc.Search("  j  ") // one char after trimming
	require.NoError(t, err)
	assert.False(t, repo.searchCalled)
}

func TestCustomerSearch_DelegatesLongerTerms(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.searchResults = []*entity.Customer{{ID: "c1", FullName: "Jordan Velez"}}
	uc := billing.NewCustomerUseCase(repo)

	got, err := uc.Search("jo")

	require.NoError(t, err)
	assert.True(t, repo.searchCalled)
	require.Len(t, got, 1)
	assert.Equal(t, "Jordan Velez", got[0].FullName)
}

func TestCustomerCreate_ValidatesMandatoryFields(t *testing.T) {
	uc := billing.NewCustomerUseCase(newFakeCustomerRepo())

	in := validCustomer()
	in.VATNumber = ""
	_, err := uc.Create(in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerCreate_PersistsAndAssignsID(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := billing.NewCustomerUseCase(repo)

	got, err := uc.Create(validCustomer())

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Len(t, repo.customers, 1)
}

func TestCustomerUpdate_NotFound(t *testing.T) {
	uc := billing.NewCustomerUseCase(newFakeCustomerRepo())

	_, err := uc.Update("missing", validCustomer())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrefillGuess(t *testing.T) {
	uc := billing.NewCustomerUseCase(newFakeCustomerRepo())

	cases := []struct {
		term string
		want dto.PrefillResponse
	}{
		{"555123", dto.PrefillResponse{Phone: "555123"}},
		{"Jordan Velez", dto.PrefillResponse{FullName: "Jordan Velez"}},
		{"jordan@example.com", dto.PrefillResponse{Email: "jordan@example.com"}},
		// Single token, no digits, no @: nothing to guess.
		{"jordan", dto.PrefillResponse{}},
		// Below the minimum search length.
		{"5", dto.PrefillResponse{}},
		{"", dto.PrefillResponse{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, uc.PrefillGuess(tc.term), "term %q", tc.term)
	}
}
