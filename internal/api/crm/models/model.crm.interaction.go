// Package models - Interaction thuộc domain CRM (crm_interactions).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interaction ghi nhận một lần tương tác với khách hàng (crm_interactions).
type Interaction struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId" index:"single:1"`
	Type       string             `json:"type" bson:"type" index:"single:1"` // call | email | meeting | note
	Subject    string             `json:"subject,omitempty" bson:"subject,omitempty"`
	Notes      string             `json:"notes,omitempty" bson:"notes,omitempty"`
	OccurredAt int64              `json:"occurredAt" bson:"occurredAt" index:"single:-1"` // Unix ms

	// Metadata do storage layer set (UnixMilli)
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
