// Package crmvc - Service cho domain CRM (crm_customers).
package crmvc

import (
	"fmt"

	basesvc "crm_backend/internal/api/base/service"
	crmmodels "crm_backend/internal/api/crm/models"
	"crm_backend/internal/common"
	"crm_backend/internal/global"
)

// CustomerService xử lý CRUD khách hàng.
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Customer]
}

// NewCustomerService tạo CustomerService mới.
func NewCustomerService() (*CustomerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmCustomers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CrmCustomers, common.ErrNotFound)
	}
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Customer](coll),
	}, nil
}
