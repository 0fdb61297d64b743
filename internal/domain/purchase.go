package domain

import "time"

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseApproved  PurchaseStatus = "approved"
	PurchaseRejected  PurchaseStatus = "rejected"
	PurchaseCompleted PurchaseStatus = "completed"
)

func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchasePending, PurchaseApproved, PurchaseRejected, PurchaseCompleted:
		return true
	}
	return false
}

// PurchaseIntent is a non-binding request to buy a product, queued for manual review.
type PurchaseIntent struct {
	ID        string         `json:"id"`
	StudentID string         `json:"studentId"`
	ProductID string         `json:"productId"`
	Quantity  int            `json:"quantity"`
	Size      string         `json:"size,omitempty"`
	Color     string         `json:"color,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	Status    PurchaseStatus `json:"status"`
}
