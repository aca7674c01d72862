// Package crmvc - Service task (crm_tasks).
package crmvc

import (
	"fmt"

	basesvc "crm_backend/internal/api/base/service"
	crmmodels "crm_backend/internal/api/crm/models"
	"crm_backend/internal/common"
	"crm_backend/internal/global"
)

// TaskService xử lý CRUD task.
type TaskService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Task]
}

// NewTaskService tạo TaskService mới.
func NewTaskService() (*TaskService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CrmTasks)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CrmTasks, common.ErrNotFound)
	}
	return &TaskService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Task](coll),
	}, nil
}
