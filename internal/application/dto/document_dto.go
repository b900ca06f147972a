package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/billora/billora-api/internal/domain/entity"
)

// LineItemPayload adds one item to a document. An omitted unit price means
// "use the catalog sell price"; an explicit zero is a free line.
type LineItemPayload struct {
	InventoryItemID string           `json:"inventoryItemId" validate:"required"`
	Quantity        int64            `json:"quantity" validate:"gt=0"`
	UnitPrice       *decimal.Decimal `json:"unitPrice,omitempty"`
}

// UpdateItemRequest carries raw edit-in-place input. Invalid values fall
// back to the item's previous state rather than erroring.
type UpdateItemRequest struct {
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// DiscountRequest commits a typed discount percentage.
type DiscountRequest struct {
	Value string `json:"value"`
}

// StatusRequest moves a document through the status state machine without
// the settlement sub-flow.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// VehiclePayload is the optional metadata block.
type VehiclePayload struct {
	Model     string `json:"model"`
	PlateNo   string `json:"plateNo"`
	ChassisNo string `json:"chassisNo"`
}

// SaveDocumentRequest creates or replaces a document draft. Derived totals
// are never accepted from the client; the server recomputes them on save.
type SaveDocumentRequest struct {
	Kind               entity.DocumentKind `json:"kind" validate:"required,oneof=invoice quotation"`
	CustomerID         string              `json:"customerId" validate:"required"`
	Items              []LineItemPayload   `json:"items" validate:"dive"`
	DiscountPercentage decimal.Decimal     `json:"discountPercentage"`
	ApplyTax           bool                `json:"applyTax"`
	IssueDate          time.Time           `json:"issueDate" validate:"required"`
	DueDate            time.Time           `json:"dueDate" validate:"required"`
	Notes              string              `json:"notes"`
	Vehicle            VehiclePayload      `json:"vehicle"`
}

// LineItemResponse is the API shape of one row.
type LineItemResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventoryItemId"`
	ItemName        string          `json:"itemName"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Total           decimal.Decimal `json:"total"`
}

// DocumentResponse is the full API shape of a document.
type DocumentResponse struct {
	ID                 string              `json:"id"`
	Kind               entity.DocumentKind `json:"kind"`
	CustomerID         string              `json:"customerId"`
	Customer           *CustomerResponse   `json:"customer,omitempty"`
	Items              []LineItemResponse  `json:"items"`
	SubTotal           decimal.Decimal     `json:"subTotal"`
	DiscountPercentage decimal.Decimal     `json:"discountPercentage"`
	DiscountAmount     decimal.Decimal     `json:"discountAmount"`
	TaxAmount          decimal.Decimal     `json:"taxAmount"`
	TotalAmount        decimal.Decimal     `json:"totalAmount"`
	ApplyTax           bool                `json:"applyTax"`
	IssueDate          time.Time           `json:"issueDate"`
	DueDate            time.Time           `json:"dueDate"`
	Status             string              `json:"status"`
	Notes              string              `json:"notes,omitempty"`
	Vehicle            VehiclePayload      `json:"vehicle"`
	Warnings           []string            `json:"warnings,omitempty"`
}

// FromDocument maps an entity to its API representation.
func FromDocument(doc *entity.Document) *DocumentResponse {
	resp := &DocumentResponse{
		ID:                 doc.ID,
		Kind:               doc.Kind,
		CustomerID:         doc.CustomerID,
		Items:              make([]LineItemResponse, 0, len(doc.Items)),
		SubTotal:           doc.SubTotal,
		DiscountPercentage: doc.DiscountPercentage,
		DiscountAmount:     doc.DiscountAmount,
		TaxAmount:          doc.TaxAmount,
		TotalAmount:        doc.TotalAmount,
		ApplyTax:           doc.ApplyTax,
		IssueDate:          doc.IssueDate,
		DueDate:            doc.DueDate,
		Status:             doc.Status,
		Notes:              doc.Notes,
		Vehicle: VehiclePayload{
			Model:     doc.Vehicle.Model,
			PlateNo:   doc.Vehicle.PlateNo,
			ChassisNo: doc.Vehicle.ChassisNo,
		},
	}
	if doc.CustomerSnapshot != nil {
		resp.Customer = ToCustomerResponse(doc.CustomerSnapshot)
	}
	for _, it := range doc.Items {
		resp.Items = append(resp.Items, LineItemResponse{
			ID:              it.ID,
			InventoryItemID: it.InventoryItemID,
			ItemName:        it.ItemName,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			Total:           it.Total,
		})
	}
	return resp
}

// ToDocument rehydrates an entity from its API representation. Round-trip
// through FromDocument reproduces items and totals exactly.
func (r *DocumentResponse) ToDocument() *entity.Document {
	doc := &entity.Document{
		ID:                 r.ID,
		Kind:               r.Kind,
		CustomerID:         r.CustomerID,
		Items:              make([]entity.LineItem, 0, len(r.Items)),
		SubTotal:           r.SubTotal,
		DiscountPercentage: r.DiscountPercentage,
		DiscountAmount:     r.DiscountAmount,
		TaxAmount:          r.TaxAmount,
		TotalAmount:        r.TotalAmount,
		ApplyTax:           r.ApplyTax,
		IssueDate:          r.IssueDate,
		DueDate:            r.DueDate,
		Status:             r.Status,
		Notes:              r.Notes,
		Vehicle: entity.VehicleInfo{
			Model:     r.Vehicle.Model,
			PlateNo:   r.Vehicle.PlateNo,
			ChassisNo: r.Vehicle.ChassisNo,
		},
	}
	if r.Customer != nil {
		doc.CustomerSnapshot = &entity.Customer{
			ID:        r.Customer.ID,
			FullName:  r.Customer.FullName,
			Email:     r.Customer.Email,
			Phone:     r.Customer.Phone,
			VATNumber: r.Customer.VATNumber,
			Address:   r.Customer.Address,
		}
	}
	for _, it := range r.Items {
		doc.Items = append(doc.Items, entity.LineItem{
			ID:              it.ID,
			InventoryItemID: it.InventoryItemID,
			ItemName:        it.ItemName,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			Total:           it.Total,
		})
	}
	return doc
}
