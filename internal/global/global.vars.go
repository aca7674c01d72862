// Package global chứa các biến toàn cục dùng chung của ứng dụng:
// config, session MongoDB, validator và registry các collection.
package global

import (
	"crm_backend/config"
	"crm_backend/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CRM_CollectionName chứa tên các collection CRM trong database
type MongoDB_CRM_CollectionName struct {
	CrmCustomers    string
	CrmContacts     string
	CrmDeals        string
	CrmTasks        string
	CrmMeetings     string
	CrmInteractions string
}

var (
	// Validate là validator dùng chung cho toàn bộ ứng dụng
	Validate *validator.Validate

	// MongoDB_Session là client MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// MongoDB_ServerConfig là cấu hình server đã load từ env
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_ColNames chứa tên các collection, được gán khi khởi động
	MongoDB_ColNames MongoDB_CRM_CollectionName

	// RegistryCollections là registry các *mongo.Collection đã đăng ký khi khởi động
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)
