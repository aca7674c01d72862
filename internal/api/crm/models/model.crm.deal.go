// Package models - Deal thuộc domain CRM (crm_deals).
// Deal là nguồn chính cho các chỉ số dashboard: tổng doanh số, win rate, sales theo kỳ.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Deal lưu cơ hội bán hàng (crm_deals).
type Deal struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title      string             `json:"title" bson:"title"`
	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId" index:"single:1,compound:crm_deal_customer_stage"`
	Stage      DealStage          `json:"stage" bson:"stage" index:"single:1,compound:crm_deal_customer_stage"` // lead | qualification | proposal | negotiation | closed_won | closed_lost
	Value      float64            `json:"value" bson:"value"`

	ExpectedCloseAt int64  `json:"expectedCloseAt,omitempty" bson:"expectedCloseAt,omitempty" index:"single:1"` // Unix ms
	Notes           string `json:"notes,omitempty" bson:"notes,omitempty"`

	// Metadata do storage layer set (UnixMilli).
	// CreatedAt quyết định deal rơi vào bucket kỳ nào trong sales-by-period.
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
