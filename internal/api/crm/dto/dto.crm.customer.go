// Package dto - DTO cho domain CRM.
// DTO dùng chung bson tag với model để transform qua bson round-trip;
// các field *Id nhận string và được chuyển thành ObjectID ở tầng handler.
package dto

// CustomerCreateInput dữ liệu tạo khách hàng mới.
type CustomerCreateInput struct {
	Name    string `json:"name" bson:"name" validate:"required"`
	Email   string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`
	Status  string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=active inactive lead"`
}

// CustomerUpdateInput dữ liệu cập nhật khách hàng (partial update).
type CustomerUpdateInput struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`
	Status  string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=active inactive lead"`
}
