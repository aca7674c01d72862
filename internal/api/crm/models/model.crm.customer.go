// Package models - Customer thuộc domain CRM (crm_customers).
// Khách hàng là gốc tham chiếu cho contact, deal, task, meeting và interaction.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer lưu thông tin khách hàng (crm_customers).
type Customer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name    string `json:"name" bson:"name" index:"single:1"`
	Email   string `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company string `json:"company,omitempty" bson:"company,omitempty" index:"single:1"`
	Status  string `json:"status,omitempty" bson:"status,omitempty" index:"single:1"` // active | inactive | lead

	// Metadata do storage layer set (UnixMilli)
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
