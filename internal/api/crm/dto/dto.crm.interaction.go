// Package dto - DTO interaction.
package dto

// InteractionCreateInput dữ liệu ghi nhận tương tác mới.
type InteractionCreateInput struct {
	CustomerId string `json:"customerId" bson:"customerId" validate:"required,len=24,hexadecimal"`
	Type       string `json:"type" bson:"type" validate:"required,oneof=call email meeting note"`
	Subject    string `json:"subject,omitempty" bson:"subject,omitempty"`
	Notes      string `json:"notes,omitempty" bson:"notes,omitempty"`
	OccurredAt int64  `json:"occurredAt" bson:"occurredAt" validate:"required"` // Unix ms
}

// InteractionUpdateInput dữ liệu cập nhật tương tác (partial update).
type InteractionUpdateInput struct {
	Type       string `json:"type,omitempty" bson:"type,omitempty" validate:"omitempty,oneof=call email meeting note"`
	Subject    string `json:"subject,omitempty" bson:"subject,omitempty"`
	Notes      string `json:"notes,omitempty" bson:"notes,omitempty"`
	OccurredAt int64  `json:"occurredAt,omitempty" bson:"occurredAt,omitempty"` // Unix ms
}
