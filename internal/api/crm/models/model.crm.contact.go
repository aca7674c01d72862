// Package models - Contact thuộc domain CRM (crm_contacts).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact lưu người liên hệ thuộc một khách hàng (crm_contacts).
type Contact struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId" index:"single:1"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Position   string             `json:"position,omitempty" bson:"position,omitempty"`

	// Metadata do storage layer set (UnixMilli)
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
