package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo persists document headers with their line items. Header and
// items are written in one transaction via the TxRunner; item display
// order is kept through an explicit position column.
type DocumentRepo struct {
	pool   *pgxpool.Pool
	runner *TxRunner
}

// NewDocumentRepository builds the adapter.
func NewDocumentRepository(pool *pgxpool.Pool, runner *TxRunner) *DocumentRepo {
	return &DocumentRepo{pool: pool, runner: runner}
}

const documentColumns = `id, kind, customer_id, customer_snapshot_name, customer_snapshot_email,
	customer_snapshot_phone, customer_snapshot_vat, customer_snapshot_address,
	sub_total, discount_percentage, discount_amount, tax_amount, total_amount,
	apply_tax, issue_date, due_date, status, notes,
	vehicle_model, vehicle_plate_no, vehicle_chassis_no, created_at, updated_at`

// Create inserts the header and all items atomically.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	return r.runner.Run(context.Background(), func(tx pgx.Tx) error {
		if err := insertHeader(tx, doc); err != nil {
			return err
		}
		return insertItems(tx, doc)
	})
}

// Update replaces the header fields and rewrites the item rows atomically.
func (r *DocumentRepo) Update(doc *entity.Document) error {
	return r.runner.Run(context.Background(), func(tx pgx.Tx) error {
		query := `
			UPDATE documents SET
				customer_id = $2, customer_snapshot_name = $3, customer_snapshot_email = $4,
				customer_snapshot_phone = $5, customer_snapshot_vat = $6, customer_snapshot_address = $7,
				sub_total = $8, discount_percentage = $9, discount_amount = $10, tax_amount = $11,
				total_amount = $12, apply_tax = $13, issue_date = $14, due_date = $15, status = $16,
				notes = $17, vehicle_model = $18, vehicle_plate_no = $19, vehicle_chassis_no = $20,
				updated_at = $21
			WHERE id = $1`
		snap := snapshotFields(doc)
		tag, err := tx.Exec(context.Background(), query,
			doc.ID, doc.CustomerID, snap.name, snap.email, snap.phone, snap.vat, snap.address,
			doc.SubTotal, doc.DiscountPercentage, doc.DiscountAmount, doc.TaxAmount,
			doc.TotalAmount, doc.ApplyTax, doc.IssueDate, doc.DueDate, doc.Status,
			doc.Notes, doc.Vehicle.Model, doc.Vehicle.PlateNo, doc.Vehicle.ChassisNo,
			doc.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		if _, err := tx.Exec(context.Background(),
			`DELETE FROM document_items WHERE document_id = $1`, doc.ID); err != nil {
			return fmt.Errorf("clear document items: %w", err)
		}
		return insertItems(tx, doc)
	})
}

// GetByID hydrates a document with its items in insertion order; nil when
// absent.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	doc, err := scanDocument(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	items, err := r.itemsFor(id)
	if err != nil {
		return nil, err
	}
	doc.Items = items
	return doc, nil
}

// ListByKind pages documents of one kind, newest first. Items are not
// hydrated on listings.
func (r *DocumentRepo) ListByKind(kind entity.DocumentKind, limit, offset int) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE kind = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, string(kind), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, doc)
	}
	return list, rows.Err()
}

// UpdateStatus persists only the status column.
func (r *DocumentRepo) UpdateStatus(id, status string) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE documents SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *DocumentRepo) itemsFor(documentID string) ([]entity.LineItem, error) {
	query := `
		SELECT id, inventory_item_id, item_name, quantity, unit_price, total
		FROM document_items WHERE document_id = $1 ORDER BY position`
	rows, err := r.pool.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document items: %w", err)
	}
	defer rows.Close()
	var items []entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.ID, &it.InventoryItemID, &it.ItemName, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("scan document item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func insertHeader(tx pgx.Tx, doc *entity.Document) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	snap := snapshotFields(doc)
	_, err := tx.Exec(context.Background(), query,
		doc.ID, string(doc.Kind), doc.CustomerID, snap.name, snap.email, snap.phone, snap.vat, snap.address,
		doc.SubTotal, doc.DiscountPercentage, doc.DiscountAmount, doc.TaxAmount, doc.TotalAmount,
		doc.ApplyTax, doc.IssueDate, doc.DueDate, doc.Status, doc.Notes,
		doc.Vehicle.Model, doc.Vehicle.PlateNo, doc.Vehicle.ChassisNo, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("document id %s already taken: %w", doc.ID, err)
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func insertItems(tx pgx.Tx, doc *entity.Document) error {
	query := `
		INSERT INTO document_items (id, document_id, inventory_item_id, item_name, quantity, unit_price, total, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, it := range doc.Items {
		_, err := tx.Exec(context.Background(), query,
			it.ID, doc.ID, it.InventoryItemID, it.ItemName, it.Quantity, it.UnitPrice, it.Total, i,
		)
		if err != nil {
			return fmt.Errorf("insert document item: %w", err)
		}
	}
	return nil
}

type snapshot struct {
	name, email, phone, vat, address string
}

func snapshotFields(doc *entity.Document) snapshot {
	if doc.CustomerSnapshot == nil {
		return snapshot{}
	}
	c := doc.CustomerSnapshot
	return snapshot{name: c.FullName, email: c.Email, phone: c.Phone, vat: c.VATNumber, address: c.Address}
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var doc entity.Document
	var snap snapshot
	var kind string
	err := row.Scan(
		&doc.ID, &kind, &doc.CustomerID, &snap.name, &snap.email, &snap.phone, &snap.vat, &snap.address,
		&doc.SubTotal, &doc.DiscountPercentage, &doc.DiscountAmount, &doc.TaxAmount, &doc.TotalAmount,
		&doc.ApplyTax, &doc.IssueDate, &doc.DueDate, &doc.Status, &doc.Notes,
		&doc.Vehicle.Model, &doc.Vehicle.PlateNo, &doc.Vehicle.ChassisNo, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	doc.Kind = entity.DocumentKind(kind)
	if snap.name != "" || snap.email != "" || snap.phone != "" {
		doc.CustomerSnapshot = &entity.Customer{
			ID:        doc.CustomerID,
			FullName:  snap.name,
			Email:     snap.email,
			Phone:     snap.phone,
			VATNumber: snap.vat,
			Address:   snap.address,
		}
	}
	return &doc, nil
}
