// Package analyticsvc - Test ComputeDashboardStats: công thức, guard chia 0,
// cửa sổ thời gian và tính idempotent.
package analyticsvc

import (
	"testing"
	"time"

	crmmodels "crm_backend/internal/api/crm/models"
)

// msUTC trả về UnixMilli của mốc thời gian UTC.
func msUTC(year int, month time.Month, day, hour, minute int) int64 {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC).UnixMilli()
}

func TestComputeDashboardStats_HaiDeal(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)
	deals := []crmmodels.Deal{
		{Value: 100, Stage: crmmodels.DealStageClosedWon, CreatedAt: msUTC(2024, time.January, 10, 0, 0)},
		{Value: 200, Stage: crmmodels.DealStageLead, CreatedAt: msUTC(2024, time.February, 5, 0, 0)},
	}

	stats := ComputeDashboardStats(now, nil, deals, nil, nil)

	if stats.TotalSales != 300 {
		t.Errorf("totalSales = %v, muốn 300", stats.TotalSales)
	}
	if stats.AvgDealSize != 150 {
		t.Errorf("avgDealSize = %v, muốn 150", stats.AvgDealSize)
	}
	if stats.WinRate != 50.0 {
		t.Errorf("winRate = %v, muốn 50.0", stats.WinRate)
	}
	if stats.ActiveDeals != 1 {
		t.Errorf("activeDeals = %v, muốn 1", stats.ActiveDeals)
	}
}

func TestComputeDashboardStats_InputRong(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)

	stats := ComputeDashboardStats(now, nil, nil, nil, nil)

	if stats.CustomerCount != 0 || stats.ActiveDeals != 0 || stats.TotalTasks != 0 || stats.UpcomingMeetings != 0 {
		t.Errorf("input rỗng phải cho counts = 0, có: %+v", stats)
	}
	// Mọi tỉ lệ với mẫu số 0 phải là 0, không được NaN/Inf
	for name, v := range map[string]float64{
		"customerGrowth":        stats.CustomerGrowth,
		"dealChange":            stats.DealChange,
		"meetingChange":         stats.MeetingChange,
		"taskCompletion":        stats.TaskCompletion,
		"totalSales":            stats.TotalSales,
		"avgDealSize":           stats.AvgDealSize,
		"winRate":               stats.WinRate,
		"customerRetentionRate": stats.CustomerRetentionRate,
	} {
		if v != 0 {
			t.Errorf("%s = %v, muốn 0 khi không có dữ liệu", name, v)
		}
	}
}

func TestComputeDashboardStats_KhongCoTask(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)

	stats := ComputeDashboardStats(now, nil, nil, []crmmodels.Task{}, nil)

	if stats.TasksDueToday != 0 {
		t.Errorf("tasksDueToday = %v, muốn 0", stats.TasksDueToday)
	}
	if stats.TaskCompletion != 0 {
		t.Errorf("taskCompletion = %v, muốn 0 khi không có task", stats.TaskCompletion)
	}
}

func TestComputeDashboardStats_TasksDueToday(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)
	tasks := []crmmodels.Task{
		// Đến hạn hôm nay, còn mở: tính
		{DueDate: msUTC(2024, time.February, 15, 18, 0), Status: crmmodels.TaskStatusPending},
		// Đến hạn hôm nay nhưng đã hoàn thành: không tính vào due, tính vào completion
		{DueDate: msUTC(2024, time.February, 15, 9, 0), Status: crmmodels.TaskStatusCompleted},
		// Đến hạn ngày mai: không tính
		{DueDate: msUTC(2024, time.February, 16, 0, 0), Status: crmmodels.TaskStatusPending},
	}

	stats := ComputeDashboardStats(now, nil, nil, tasks, nil)

	if stats.TasksDueToday != 1 {
		t.Errorf("tasksDueToday = %v, muốn 1", stats.TasksDueToday)
	}
	if stats.TotalTasks != 3 {
		t.Errorf("totalTasks = %v, muốn 3", stats.TotalTasks)
	}
	if stats.TaskCompletion != 33.3 {
		t.Errorf("taskCompletion = %v, muốn 33.3 (1/3 làm tròn 1 chữ số)", stats.TaskCompletion)
	}
}

func TestComputeDashboardStats_UpcomingMeetings(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)
	meetings := []crmmodels.Meeting{
		{StartTime: msUTC(2024, time.February, 16, 9, 0), Status: crmmodels.MeetingStatusScheduled},
		{StartTime: msUTC(2024, time.February, 16, 9, 0), Status: crmmodels.MeetingStatusCancelled},
		{StartTime: msUTC(2024, time.February, 14, 9, 0), Status: crmmodels.MeetingStatusScheduled},
	}

	stats := ComputeDashboardStats(now, nil, nil, nil, meetings)

	if stats.UpcomingMeetings != 1 {
		t.Errorf("upcomingMeetings = %v, muốn 1 (chỉ scheduled trong tương lai)", stats.UpcomingMeetings)
	}
}

func TestComputeDashboardStats_CustomerGrowth(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)
	customers := []crmmodels.Customer{
		// Tháng trước (tháng 1): 2 khách
		{CreatedAt: msUTC(2024, time.January, 5, 0, 0)},
		{CreatedAt: msUTC(2024, time.January, 20, 0, 0)},
		// Tháng này: 3 khách
		{CreatedAt: msUTC(2024, time.February, 1, 0, 0)},
		{CreatedAt: msUTC(2024, time.February, 10, 0, 0)},
		{CreatedAt: msUTC(2024, time.February, 14, 0, 0)},
	}

	stats := ComputeDashboardStats(now, customers, nil, nil, nil)

	if stats.CustomerCount != 5 {
		t.Errorf("customerCount = %v, muốn 5", stats.CustomerCount)
	}
	if stats.CustomerGrowth != 50.0 {
		t.Errorf("customerGrowth = %v, muốn 50.0 ((3-2)/2*100)", stats.CustomerGrowth)
	}
}

func TestComputeDashboardStats_CustomerGrowthKhongBaseline(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)
	// Không có khách nào tạo tháng trước -> growth = 0 dù tháng này có khách mới
	customers := []crmmodels.Customer{
		{CreatedAt: msUTC(2024, time.February, 10, 0, 0)},
		{CreatedAt: msUTC(2024, time.February, 12, 0, 0)},
	}

	stats := ComputeDashboardStats(now, customers, nil, nil, nil)

	if stats.CustomerGrowth != 0 {
		t.Errorf("customerGrowth = %v, muốn 0 khi tháng trước không có khách mới", stats.CustomerGrowth)
	}
}

func TestComputeDashboardStats_RetentionRate(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)
	// 5 khách, 2 tạo trong tháng này -> startingCount = 3 > 0 -> rate = 3/3*100 = 100
	customers := []crmmodels.Customer{
		{CreatedAt: msUTC(2023, time.November, 1, 0, 0)},
		{CreatedAt: msUTC(2023, time.December, 1, 0, 0)},
		{CreatedAt: msUTC(2024, time.January, 15, 0, 0)},
		{CreatedAt: msUTC(2024, time.February, 5, 0, 0)},
		{CreatedAt: msUTC(2024, time.February, 10, 0, 0)},
	}

	stats := ComputeDashboardStats(now, customers, nil, nil, nil)

	if stats.CustomerRetentionRate != 100.0 {
		t.Errorf("customerRetentionRate = %v, muốn 100.0 khi startingCount > 0", stats.CustomerRetentionRate)
	}
}

func TestComputeDashboardStats_RetentionRateKhongCoKhachDauKy(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)
	// Toàn bộ khách tạo trong tháng này -> startingCount = 0 -> rate = 0
	customers := []crmmodels.Customer{
		{CreatedAt: msUTC(2024, time.February, 5, 0, 0)},
	}

	stats := ComputeDashboardStats(now, customers, nil, nil, nil)

	if stats.CustomerRetentionRate != 0 {
		t.Errorf("customerRetentionRate = %v, muốn 0 khi startingCount = 0", stats.CustomerRetentionRate)
	}
}

func TestComputeDashboardStats_Idempotent(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)
	customers := []crmmodels.Customer{{CreatedAt: msUTC(2024, time.January, 5, 0, 0)}}
	deals := []crmmodels.Deal{
		{Value: 123.45, Stage: crmmodels.DealStageClosedWon, CreatedAt: msUTC(2024, time.January, 10, 0, 0)},
		{Value: 67.89, Stage: crmmodels.DealStageNegotiation, CreatedAt: msUTC(2024, time.February, 5, 0, 0)},
	}
	tasks := []crmmodels.Task{{DueDate: msUTC(2024, time.February, 15, 12, 0), Status: crmmodels.TaskStatusInProgress}}
	meetings := []crmmodels.Meeting{{StartTime: msUTC(2024, time.February, 20, 9, 0), Status: crmmodels.MeetingStatusScheduled}}

	first := ComputeDashboardStats(now, customers, deals, tasks, meetings)
	second := ComputeDashboardStats(now, customers, deals, tasks, meetings)

	if first != second {
		t.Errorf("hai lần tính với cùng input phải cho kết quả giống nhau:\nlần 1: %+v\nlần 2: %+v", first, second)
	}
}
