// Package crmvc - Service người liên hệ (crm_contacts).
package crmvc

import (
	"fmt"

	basesvc "crm_backend/internal/api/base/service"
	crmmodels "crm_backend/internal/api/crm/models"
	"crm_backend/internal/common"
	"crm_backend/internal/global"
)

// ContactService xử lý CRUD người liên hệ.
type ContactService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Contact]
}

// NewContactService tạo ContactService mới.
func NewContactService() (*ContactService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmContacts)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CrmContacts, common.ErrNotFound)
	}
	return &ContactService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Contact](coll),
	}, nil
}
