// Package crmvc - Service tương tác khách hàng (crm_interactions).
package crmvc

import (
	"fmt"

	basesvc "crm_backend/internal/api/base/service"
	crmmodels "crm_backend/internal/api/crm/models"
	"crm_backend/internal/common"
	"crm_backend/internal/global"
)

// InteractionService xử lý CRUD tương tác khách hàng.
type InteractionService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Interaction]
}

// NewInteractionService tạo InteractionService mới.
func NewInteractionService() (*InteractionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmInteractions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CrmInteractions, common.ErrNotFound)
	}
	return &InteractionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Interaction](coll),
	}, nil
}
