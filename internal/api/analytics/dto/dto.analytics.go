// Package dto - DTO cho domain analytics: chỉ số dashboard, phân bố deal theo
// giai đoạn, doanh số theo kỳ.
package dto

// DashboardStatsResponse chứa các chỉ số tổng hợp hiển thị trên dashboard.
// Tất cả phần trăm làm tròn 1 chữ số thập phân, tiền tệ 2 chữ số.
type DashboardStatsResponse struct {
	CustomerCount  int64   `json:"customerCount"`
	CustomerGrowth float64 `json:"customerGrowth"` // % tăng trưởng khách hàng tháng này so với tháng trước

	ActiveDeals int64   `json:"activeDeals"` // Deal còn trong pipeline (chưa đóng)
	DealChange  float64 `json:"dealChange"`  // % thay đổi số deal tạo mới tháng này so với tháng trước

	UpcomingMeetings int64   `json:"upcomingMeetings"` // Meeting scheduled có startTime >= now
	MeetingChange    float64 `json:"meetingChange"`

	TasksDueToday  int64   `json:"tasksDueToday"` // Task đến hạn hôm nay, chưa hoàn thành/hủy
	TotalTasks     int64   `json:"totalTasks"`
	TaskCompletion float64 `json:"taskCompletion"` // % task completed trên tổng

	TotalSales  float64 `json:"totalSales"`  // Tổng value của mọi deal
	AvgDealSize float64 `json:"avgDealSize"` // totalSales / tổng số deal
	WinRate     float64 `json:"winRate"`     // closed_won / tổng số deal × 100

	CustomerRetentionRate float64 `json:"customerRetentionRate"`
}

// DealStageItem là một bucket trong phân bố deal theo giai đoạn.
type DealStageItem struct {
	Stage      string  `json:"stage"`
	Count      int64   `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// PeriodBucketItem là một bucket thời gian trong doanh số theo kỳ.
// StartDate/EndDate là Unix ms, membership inclusive hai đầu.
type PeriodBucketItem struct {
	Name      string  `json:"name"` // "Week 1", "Jan", "Q2 2024", "2024"
	StartDate int64   `json:"startDate"`
	EndDate   int64   `json:"endDate"`
	Value     float64 `json:"value"` // Σ value deal tạo trong kỳ
	Count     int64   `json:"count"` // Số deal tạo trong kỳ
}
