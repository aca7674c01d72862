// Package models - Task thuộc domain CRM (crm_tasks).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task lưu công việc gắn với khách hàng/deal (crm_tasks).
type Task struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title      string             `json:"title" bson:"title"`
	CustomerID primitive.ObjectID `json:"customerId,omitempty" bson:"customerId,omitempty" index:"single:1"`
	DealID     primitive.ObjectID `json:"dealId,omitempty" bson:"dealId,omitempty" index:"single:1"`

	DueDate  int64      `json:"dueDate,omitempty" bson:"dueDate,omitempty" index:"single:1,compound:crm_task_due_status"` // Unix ms
	Status   TaskStatus `json:"status" bson:"status" index:"compound:crm_task_due_status"`                               // pending | in_progress | completed | cancelled
	Priority string     `json:"priority,omitempty" bson:"priority,omitempty"`                                            // low | medium | high

	// Metadata do storage layer set (UnixMilli)
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
