// Package dto - DTO task.
package dto

// TaskCreateInput dữ liệu tạo task mới.
type TaskCreateInput struct {
	Title      string `json:"title" bson:"title" validate:"required"`
	CustomerId string `json:"customerId,omitempty" bson:"customerId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	DealId     string `json:"dealId,omitempty" bson:"dealId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	DueDate    int64  `json:"dueDate,omitempty" bson:"dueDate,omitempty"` // Unix ms
	Status     string `json:"status" bson:"status" validate:"required,task_status"`
	Priority   string `json:"priority,omitempty" bson:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

// TaskUpdateInput dữ liệu cập nhật task (partial update).
type TaskUpdateInput struct {
	Title    string `json:"title,omitempty" bson:"title,omitempty"`
	DueDate  int64  `json:"dueDate,omitempty" bson:"dueDate,omitempty"` // Unix ms
	Status   string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,task_status"`
	Priority string `json:"priority,omitempty" bson:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}
