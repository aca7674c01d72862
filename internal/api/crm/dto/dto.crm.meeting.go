// Package dto - DTO meeting.
package dto

// MeetingCreateInput dữ liệu tạo cuộc họp mới.
type MeetingCreateInput struct {
	Title      string `json:"title" bson:"title" validate:"required"`
	CustomerId string `json:"customerId,omitempty" bson:"customerId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	StartTime  int64  `json:"startTime" bson:"startTime" validate:"required"` // Unix ms
	EndTime    int64  `json:"endTime,omitempty" bson:"endTime,omitempty"`     // Unix ms
	Status     string `json:"status" bson:"status" validate:"required,meeting_status"`
	Location   string `json:"location,omitempty" bson:"location,omitempty"`
}

// MeetingUpdateInput dữ liệu cập nhật cuộc họp (partial update).
type MeetingUpdateInput struct {
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	StartTime int64  `json:"startTime,omitempty" bson:"startTime,omitempty"` // Unix ms
	EndTime   int64  `json:"endTime,omitempty" bson:"endTime,omitempty"`     // Unix ms
	Status    string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,meeting_status"`
	Location  string `json:"location,omitempty" bson:"location,omitempty"`
}
