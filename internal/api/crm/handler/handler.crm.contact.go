// Package crmhdl - Handler người liên hệ.
package crmhdl

import (
	"fmt"

	basehdl "crm_backend/internal/api/base/handler"
	crmdto "crm_backend/internal/api/crm/dto"
	crmmodels "crm_backend/internal/api/crm/models"
	crmvc "crm_backend/internal/api/crm/service"
)

// ContactHandler xử lý CRUD người liên hệ.
type ContactHandler struct {
	*basehdl.BaseHandler[crmmodels.Contact, crmdto.ContactCreateInput, crmdto.ContactUpdateInput]
	ContactService *crmvc.ContactService
}

// NewContactHandler tạo ContactHandler mới.
func NewContactHandler() (*ContactHandler, error) {
	svc, err := crmvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("tạo ContactService: %w", err)
	}
	return &ContactHandler{
		BaseHandler:    basehdl.NewBaseHandler[crmmodels.Contact, crmdto.ContactCreateInput, crmdto.ContactUpdateInput](svc),
		ContactService: svc,
	}, nil
}
