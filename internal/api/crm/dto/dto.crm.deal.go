// Package dto - DTO deal.
package dto

// DealCreateInput dữ liệu tạo deal mới.
type DealCreateInput struct {
	Title           string  `json:"title" bson:"title" validate:"required"`
	CustomerId      string  `json:"customerId" bson:"customerId" validate:"required,len=24,hexadecimal"`
	Stage           string  `json:"stage" bson:"stage" validate:"required,deal_stage"`
	Value           float64 `json:"value" bson:"value" validate:"gte=0"`
	ExpectedCloseAt int64   `json:"expectedCloseAt,omitempty" bson:"expectedCloseAt,omitempty"` // Unix ms
	Notes           string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

// DealUpdateInput dữ liệu cập nhật deal (partial update).
type DealUpdateInput struct {
	Title           string  `json:"title,omitempty" bson:"title,omitempty"`
	Stage           string  `json:"stage,omitempty" bson:"stage,omitempty" validate:"omitempty,deal_stage"`
	Value           float64 `json:"value,omitempty" bson:"value,omitempty" validate:"omitempty,gte=0"`
	ExpectedCloseAt int64   `json:"expectedCloseAt,omitempty" bson:"expectedCloseAt,omitempty"` // Unix ms
	Notes           string  `json:"notes,omitempty" bson:"notes,omitempty"`
}
