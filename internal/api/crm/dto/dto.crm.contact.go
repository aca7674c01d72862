// Package dto - DTO contact.
package dto

// ContactCreateInput dữ liệu tạo người liên hệ mới.
type ContactCreateInput struct {
	CustomerId string `json:"customerId" bson:"customerId" validate:"required,len=24,hexadecimal"`
	Name       string `json:"name" bson:"name" validate:"required"`
	Email      string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
	Position   string `json:"position,omitempty" bson:"position,omitempty"`
}

// ContactUpdateInput dữ liệu cập nhật người liên hệ (partial update).
type ContactUpdateInput struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Position string `json:"position,omitempty" bson:"position,omitempty"`
}
