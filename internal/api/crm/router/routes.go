// Package router đăng ký các route thuộc domain CRM: customers, contacts, deals,
// tasks, meetings, interactions.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "crm_backend/internal/api/crm/handler"
	apirouter "crm_backend/internal/api/router"
)

// Register đăng ký tất cả route CRM lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerHandler, err := crmhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("tạo CustomerHandler: %w", err)
	}
	contactHandler, err := crmhdl.NewContactHandler()
	if err != nil {
		return fmt.Errorf("tạo ContactHandler: %w", err)
	}
	dealHandler, err := crmhdl.NewDealHandler()
	if err != nil {
		return fmt.Errorf("tạo DealHandler: %w", err)
	}
	taskHandler, err := crmhdl.NewTaskHandler()
	if err != nil {
		return fmt.Errorf("tạo TaskHandler: %w", err)
	}
	meetingHandler, err := crmhdl.NewMeetingHandler()
	if err != nil {
		return fmt.Errorf("tạo MeetingHandler: %w", err)
	}
	interactionHandler, err := crmhdl.NewInteractionHandler()
	if err != nil {
		return fmt.Errorf("tạo InteractionHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/customers", customerHandler, apirouter.ReadWriteConfig, "Customer")
	r.RegisterCRUDRoutes(v1, "/contacts", contactHandler, apirouter.ReadWriteConfig, "Contact")
	r.RegisterCRUDRoutes(v1, "/deals", dealHandler, apirouter.ReadWriteConfig, "Deal")
	r.RegisterCRUDRoutes(v1, "/tasks", taskHandler, apirouter.ReadWriteConfig, "Task")
	r.RegisterCRUDRoutes(v1, "/meetings", meetingHandler, apirouter.ReadWriteConfig, "Meeting")
	r.RegisterCRUDRoutes(v1, "/interactions", interactionHandler, apirouter.ReadWriteConfig, "Interaction")

	return nil
}
