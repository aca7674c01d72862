// Package crmvc - Service cuộc họp (crm_meetings).
package crmvc

import (
	"fmt"

	basesvc "crm_backend/internal/api/base/service"
	crmmodels "crm_backend/internal/api/crm/models"
	"crm_backend/internal/common"
	"crm_backend/internal/global"
)

// MeetingService xử lý CRUD cuộc họp.
type MeetingService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Meeting]
}

// NewMeetingService tạo MeetingService mới.
func NewMeetingService() (*MeetingService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmMeetings)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CrmMeetings, common.ErrNotFound)
	}
	return &MeetingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Meeting](coll),
	}, nil
}
