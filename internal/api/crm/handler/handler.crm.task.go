// Package crmhdl - Handler task.
package crmhdl

import (
	"fmt"

	basehdl "crm_backend/internal/api/base/handler"
	crmdto "crm_backend/internal/api/crm/dto"
	crmmodels "crm_backend/internal/api/crm/models"
	crmvc "crm_backend/internal/api/crm/service"
)

// TaskHandler xử lý CRUD task.
type TaskHandler struct {
	*basehdl.BaseHandler[crmmodels.Task, crmdto.TaskCreateInput, crmdto.TaskUpdateInput]
	TaskService *crmvc.TaskService
}

// NewTaskHandler tạo TaskHandler mới.
func NewTaskHandler() (*TaskHandler, error) {
	svc, err := crmvc.NewTaskService()
	if err != nil {
		return nil, fmt.Errorf("tạo TaskService: %w", err)
	}
	return &TaskHandler{
		BaseHandler: basehdl.NewBaseHandler[crmmodels.Task, crmdto.TaskCreateInput, crmdto.TaskUpdateInput](svc),
		TaskService: svc,
	}, nil
}
