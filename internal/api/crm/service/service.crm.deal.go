// Package crmvc - Service deal (crm_deals).
package crmvc

import (
	"fmt"

	basesvc "crm_backend/internal/api/base/service"
	crmmodels "crm_backend/internal/api/crm/models"
	"crm_backend/internal/common"
	"crm_backend/internal/global"
)

// DealService xử lý CRUD deal.
type DealService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Deal]
}

// NewDealService tạo DealService mới.
func NewDealService() (*DealService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmDeals)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CrmDeals, common.ErrNotFound)
	}
	return &DealService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Deal](coll),
	}, nil
}
