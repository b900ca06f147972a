package billing_test

import (
	"errors"
	"fmt"

	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/pkg/logger"
)

// In-memory repository fakes shared by the use case tests.

type fakeDocumentRepo struct {
	docs       map[string]*entity.Document
	failStatus bool // next UpdateStatus calls fail
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string]*entity.Document)}
}

func (f *fakeDocumentRepo) Create(doc *entity.Document) error { f.docs[doc.ID] = doc; return nil }
func (f *fakeDocumentRepo) Update(doc *entity.Document) error { f.docs[doc.ID] = doc; return nil }
func (f *fakeDocumentRepo) GetByID(id string) (*entity.Document, error) {
	return f.docs[id], nil
}
func (f *fakeDocumentRepo) ListByKind(kind entity.DocumentKind, limit, offset int) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range f.docs {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out, nil
}
func (f *fakeDocumentRepo) UpdateStatus(id, status string) error {
	if f.failStatus {
		return errors.New("connection reset")
	}
	if doc, ok := f.docs[id]; ok {
		doc.Status = status
	}
	return nil
}

type fakeCompanyRepo struct{ company *entity.Company }

func (f *fakeCompanyRepo) GetProfile() (*entity.Company, error) { return f.company, nil }
func (f *fakeCompanyRepo) SaveProfile(c *entity.Company) error  { f.company = c; return nil }

type fakeTransactionRepo struct {
	byDocument map[string]*entity.PaymentTransaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{byDocument: make(map[string]*entity.PaymentTransaction)}
}

func (f *fakeTransactionRepo) Create(tx *entity.PaymentTransaction) error {
	f.byDocument[tx.DocumentID] = tx
	return nil
}

func (f *fakeTransactionRepo) GetByDocumentID(documentID string) (*entity.PaymentTransaction, error) {
	return f.byDocument[documentID], nil
}

type fakeInventoryRepo struct {
	items []*entity.InventoryItem
}

func (f *fakeInventoryRepo) List() ([]*entity.InventoryItem, error) { return f.items, nil }
func (f *fakeInventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

type fakeSequenceRepo struct {
	nextDoc int
	nextTx  int
}

func (f *fakeSequenceRepo) NextDocumentID(kind entity.DocumentKind) (string, error) {
	f.nextDoc++
	prefix := "INV"
	if kind == entity.KindQuotation {
		prefix = "QUO"
	}
	return fmt.Sprintf("%s-%05d", prefix, f.nextDoc), nil
}

func (f *fakeSequenceRepo) NextTransactionID() (string, error) {
	f.nextTx++
	return fmt.Sprintf("TXN-%05d", f.nextTx), nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}
