// Package crmhdl - Handler cuộc họp.
package crmhdl

import (
	"fmt"

	basehdl "crm_backend/internal/api/base/handler"
	crmdto "crm_backend/internal/api/crm/dto"
	crmmodels "crm_backend/internal/api/crm/models"
	crmvc "crm_backend/internal/api/crm/service"
)

// MeetingHandler xử lý CRUD cuộc họp.
type MeetingHandler struct {
	*basehdl.BaseHandler[crmmodels.Meeting, crmdto.MeetingCreateInput, crmdto.MeetingUpdateInput]
	MeetingService *crmvc.MeetingService
}

// NewMeetingHandler tạo MeetingHandler mới.
func NewMeetingHandler() (*MeetingHandler, error) {
	svc, err := crmvc.NewMeetingService()
	if err != nil {
		return nil, fmt.Errorf("tạo MeetingService: %w", err)
	}
	return &MeetingHandler{
		BaseHandler:    basehdl.NewBaseHandler[crmmodels.Meeting, crmdto.MeetingCreateInput, crmdto.MeetingUpdateInput](svc),
		MeetingService: svc,
	}, nil
}
