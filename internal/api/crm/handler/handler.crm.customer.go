// Package crmhdl - Handler CRUD cho domain CRM.
// Mỗi handler embed BaseHandler generic, toàn bộ CRUD endpoint dùng lại từ base.
package crmhdl

import (
	"fmt"

	basehdl "crm_backend/internal/api/base/handler"
	crmdto "crm_backend/internal/api/crm/dto"
	crmmodels "crm_backend/internal/api/crm/models"
	crmvc "crm_backend/internal/api/crm/service"
)

// CustomerHandler xử lý CRUD khách hàng.
type CustomerHandler struct {
	*basehdl.BaseHandler[crmmodels.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput]
	CustomerService *crmvc.CustomerService
}

// NewCustomerHandler tạo CustomerHandler mới.
func NewCustomerHandler() (*CustomerHandler, error) {
	svc, err := crmvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("tạo CustomerService: %w", err)
	}
	return &CustomerHandler{
		BaseHandler:     basehdl.NewBaseHandler[crmmodels.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput](svc),
		CustomerService: svc,
	}, nil
}
