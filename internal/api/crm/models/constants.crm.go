// Package models - Constants cho domain CRM: giai đoạn deal, trạng thái task/meeting.
package models

// DealStage là giai đoạn của deal trong pipeline bán hàng.
type DealStage string

const (
	DealStageLead          DealStage = "lead"
	DealStageQualification DealStage = "qualification"
	DealStageProposal      DealStage = "proposal"
	DealStageNegotiation   DealStage = "negotiation"
	DealStageClosedWon     DealStage = "closed_won"
	DealStageClosedLost    DealStage = "closed_lost"

	// DealStageUnknown dùng cho giá trị ngoài danh sách (dữ liệu cũ hoặc nguồn ngoài).
	DealStageUnknown DealStage = "unknown"
)

// AllDealStages liệt kê các giai đoạn hợp lệ theo thứ tự pipeline.
var AllDealStages = []DealStage{
	DealStageLead,
	DealStageQualification,
	DealStageProposal,
	DealStageNegotiation,
	DealStageClosedWon,
	DealStageClosedLost,
}

// ParseDealStage chuyển chuỗi thành DealStage, trả về DealStageUnknown nếu không khớp.
func ParseDealStage(s string) DealStage {
	for _, stage := range AllDealStages {
		if s == string(stage) {
			return stage
		}
	}
	return DealStageUnknown
}

// IsOpen kiểm tra deal còn trong pipeline (chưa đóng won/lost).
func (s DealStage) IsOpen() bool {
	switch s {
	case DealStageLead, DealStageQualification, DealStageProposal, DealStageNegotiation:
		return true
	}
	return false
}

// TaskStatus là trạng thái của task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"

	TaskStatusUnknown TaskStatus = "unknown"
)

// AllTaskStatuses liệt kê các trạng thái task hợp lệ.
var AllTaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusCancelled,
}

// ParseTaskStatus chuyển chuỗi thành TaskStatus, trả về TaskStatusUnknown nếu không khớp.
func ParseTaskStatus(s string) TaskStatus {
	for _, status := range AllTaskStatuses {
		if s == string(status) {
			return status
		}
	}
	return TaskStatusUnknown
}

// IsDone kiểm tra task đã kết thúc (hoàn thành hoặc hủy), không tính vào "đến hạn".
func (s TaskStatus) IsDone() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// MeetingStatus là trạng thái của cuộc họp.
type MeetingStatus string

const (
	MeetingStatusScheduled   MeetingStatus = "scheduled"
	MeetingStatusCompleted   MeetingStatus = "completed"
	MeetingStatusCancelled   MeetingStatus = "cancelled"
	MeetingStatusRescheduled MeetingStatus = "rescheduled"

	MeetingStatusUnknown MeetingStatus = "unknown"
)

// AllMeetingStatuses liệt kê các trạng thái meeting hợp lệ.
var AllMeetingStatuses = []MeetingStatus{
	MeetingStatusScheduled,
	MeetingStatusCompleted,
	MeetingStatusCancelled,
	MeetingStatusRescheduled,
}

// ParseMeetingStatus chuyển chuỗi thành MeetingStatus, trả về MeetingStatusUnknown nếu không khớp.
func ParseMeetingStatus(s string) MeetingStatus {
	for _, status := range AllMeetingStatuses {
		if s == string(status) {
			return status
		}
	}
	return MeetingStatusUnknown
}

// Trạng thái customer.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusLead     = "lead"
)

// Loại interaction được ghi nhận.
const (
	InteractionTypeCall    = "call"
	InteractionTypeEmail   = "email"
	InteractionTypeMeeting = "meeting"
	InteractionTypeNote    = "note"
)
