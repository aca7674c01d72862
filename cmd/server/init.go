package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"crm_backend/config"
	crmmodels "crm_backend/internal/api/crm/models"
	"crm_backend/internal/database"
	"crm_backend/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database (tiền tố crm_)
func initColNames() {
	global.MongoDB_ColNames.CrmCustomers = "crm_customers"
	global.MongoDB_ColNames.CrmContacts = "crm_contacts"
	global.MongoDB_ColNames.CrmDeals = "crm_deals"
	global.MongoDB_ColNames.CrmTasks = "crm_tasks"
	global.MongoDB_ColNames.CrmMeetings = "crm_meetings"
	global.MongoDB_ColNames.CrmInteractions = "crm_interactions"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validators: deal_stage, task_status, meeting_status)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo tag `index` của model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	indexTargets := []struct {
		colName string
		model   interface{}
	}{
		{global.MongoDB_ColNames.CrmCustomers, crmmodels.Customer{}},
		{global.MongoDB_ColNames.CrmContacts, crmmodels.Contact{}},
		{global.MongoDB_ColNames.CrmDeals, crmmodels.Deal{}},
		{global.MongoDB_ColNames.CrmTasks, crmmodels.Task{}},
		{global.MongoDB_ColNames.CrmMeetings, crmmodels.Meeting{}},
		{global.MongoDB_ColNames.CrmInteractions, crmmodels.Interaction{}},
	}
	for _, target := range indexTargets {
		if err := database.CreateIndexes(context.TODO(), db.Collection(target.colName), target.model); err != nil {
			logrus.Fatalf("Failed to create indexes for %s: %v", target.colName, err)
		}
	}
	logrus.Info("Created collection indexes")
}
