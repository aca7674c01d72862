// Package crmhdl - Handler tương tác khách hàng.
package crmhdl

import (
	"fmt"

	basehdl "crm_backend/internal/api/base/handler"
	crmdto "crm_backend/internal/api/crm/dto"
	crmmodels "crm_backend/internal/api/crm/models"
	crmvc "crm_backend/internal/api/crm/service"
)

// InteractionHandler xử lý CRUD tương tác khách hàng.
type InteractionHandler struct {
	*basehdl.BaseHandler[crmmodels.Interaction, crmdto.InteractionCreateInput, crmdto.InteractionUpdateInput]
	InteractionService *crmvc.InteractionService
}

// NewInteractionHandler tạo InteractionHandler mới.
func NewInteractionHandler() (*InteractionHandler, error) {
	svc, err := crmvc.NewInteractionService()
	if err != nil {
		return nil, fmt.Errorf("tạo InteractionService: %w", err)
	}
	return &InteractionHandler{
		BaseHandler:        basehdl.NewBaseHandler[crmmodels.Interaction, crmdto.InteractionCreateInput, crmdto.InteractionUpdateInput](svc),
		InteractionService: svc,
	}, nil
}
