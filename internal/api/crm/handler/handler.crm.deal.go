// Package crmhdl - Handler deal.
package crmhdl

import (
	"fmt"

	basehdl "crm_backend/internal/api/base/handler"
	crmdto "crm_backend/internal/api/crm/dto"
	crmmodels "crm_backend/internal/api/crm/models"
	crmvc "crm_backend/internal/api/crm/service"
)

// DealHandler xử lý CRUD deal.
type DealHandler struct {
	*basehdl.BaseHandler[crmmodels.Deal, crmdto.DealCreateInput, crmdto.DealUpdateInput]
	DealService *crmvc.DealService
}

// NewDealHandler tạo DealHandler mới.
func NewDealHandler() (*DealHandler, error) {
	svc, err := crmvc.NewDealService()
	if err != nil {
		return nil, fmt.Errorf("tạo DealService: %w", err)
	}
	return &DealHandler{
		BaseHandler: basehdl.NewBaseHandler[crmmodels.Deal, crmdto.DealCreateInput, crmdto.DealUpdateInput](svc),
		DealService: svc,
	}, nil
}
