// Package models - Meeting thuộc domain CRM (crm_meetings).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meeting lưu cuộc họp với khách hàng (crm_meetings).
type Meeting struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title      string             `json:"title" bson:"title"`
	CustomerID primitive.ObjectID `json:"customerId,omitempty" bson:"customerId,omitempty" index:"single:1"`

	StartTime int64         `json:"startTime" bson:"startTime" index:"single:1,compound:crm_meeting_start_status"` // Unix ms
	EndTime   int64         `json:"endTime,omitempty" bson:"endTime,omitempty"`                                    // Unix ms
	Status    MeetingStatus `json:"status" bson:"status" index:"compound:crm_meeting_start_status"`                // scheduled | completed | cancelled
	Location  string        `json:"location,omitempty" bson:"location,omitempty"`

	// Metadata do storage layer set (UnixMilli)
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
