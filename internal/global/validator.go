package global

import (
	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Các validator cho enum của domain CRM
	_ = Validate.RegisterValidation("deal_stage", validateDealStage)
	_ = Validate.RegisterValidation("task_status", validateTaskStatus)
	_ = Validate.RegisterValidation("meeting_status", validateMeetingStatus)
}

// validateDealStage kiểm tra stage hợp lệ của deal
func validateDealStage(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "lead", "qualification", "proposal", "negotiation", "closed_won", "closed_lost":
		return true
	}
	return false
}

// validateTaskStatus kiểm tra status hợp lệ của task
func validateTaskStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "in_progress", "completed", "cancelled":
		return true
	}
	return false
}

// validateMeetingStatus kiểm tra status hợp lệ của meeting
func validateMeetingStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "scheduled", "completed", "cancelled", "rescheduled":
		return true
	}
	return false
}
