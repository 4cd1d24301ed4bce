// Package model defines the core domain entities for the pantry service.
package model

import (
	"errors"
	"strings"
	"time"
)

// BatchStatus describes the lifecycle state of an inventory batch.
type BatchStatus string

const (
	// BatchStatusActive marks a batch that can still be drawn from.
	BatchStatusActive BatchStatus = "active"
	// BatchStatusDepleted marks a batch whose quantity reached zero.
	// Depleted batches are never resurrected; new stock creates a new batch.
	BatchStatusDepleted BatchStatus = "depleted"
)

// Validation errors for inventory records arriving at the core boundary.
var (
	ErrBatchMissingID      = errors.New("batch: missing id")
	ErrBatchMissingProduct = errors.New("batch: missing product name")
	ErrBatchNegativeQty    = errors.New("batch: quantity must be non-negative")
)

// Batch represents a single lot of one product in the pantry: a quantity in
// one unit, added at one time, with its own optional expiration date.
//
// A nil ExpirationDate means the product does not expire. A batch with
// quantity zero is logically depleted and excluded from selection.
//
// @Description Inventory batch (lot) of a single product
// @Example {"batch_id": "b1", "product_name": "milk", "quantity": 1.5, "unit": "l", "expiration_date": "2025-02-01T00:00:00Z", "status": "active"}
type Batch struct {
	// ID uniquely identifies the batch.
	ID string `json:"batch_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// ProductName is the inventory label matched against recipe ingredients.
	ProductName string `json:"product_name" example:"milk"`
	// Quantity is the amount currently on hand. Never negative.
	Quantity float64 `json:"quantity" example:"1.5"`
	// Unit is the unit Quantity is expressed in.
	Unit string `json:"unit" example:"l"`
	// ExpirationDate is when the batch expires; nil means no expiry.
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	// Status is the lifecycle state (active or depleted).
	Status BatchStatus `json:"status" example:"active"`
}

// Validate rejects malformed batch records at the boundary so the
// allocation algorithms never see them.
func (b Batch) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return ErrBatchMissingID
	}
	if strings.TrimSpace(b.ProductName) == "" {
		return ErrBatchMissingProduct
	}
	if b.Quantity < 0 {
		return ErrBatchNegativeQty
	}
	return nil
}

// IsDepleted reports whether the batch has nothing left to draw.
func (b Batch) IsDepleted() bool {
	return b.Status == BatchStatusDepleted || b.Quantity <= 0
}

// IsExpired reports whether the batch expired strictly before the given day.
// The reference time is normalized to midnight first, so a batch expiring
// today is still eligible.
func (b Batch) IsExpired(now time.Time) bool {
	if b.ExpirationDate == nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return b.ExpirationDate.Before(today)
}
