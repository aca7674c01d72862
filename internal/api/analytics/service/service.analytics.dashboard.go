// Package analyticsvc - Service tổng hợp số liệu CRM: chỉ số dashboard,
// phân bố deal theo giai đoạn và doanh số theo kỳ.
//
// Các hàm tính toán là pure function nhận dữ liệu đã nạp sẵn và mốc thời
// gian `now` tường minh, để service có thể test không cần database.
package analyticsvc

import (
	"context"
	"fmt"
	"math"
	"time"

	analyticsdto "crm_backend/internal/api/analytics/dto"
	crmmodels "crm_backend/internal/api/crm/models"
	crmvc "crm_backend/internal/api/crm/service"
)

// AnalyticsService đọc dữ liệu CRM và tính các số liệu tổng hợp.
type AnalyticsService struct {
	customerService *crmvc.CustomerService
	dealService     *crmvc.DealService
	taskService     *crmvc.TaskService
	meetingService  *crmvc.MeetingService
}

// NewAnalyticsService tạo AnalyticsService mới từ các service CRM.
func NewAnalyticsService() (*AnalyticsService, error) {
	customerService, err := crmvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("tạo CustomerService: %w", err)
	}
	dealService, err := crmvc.NewDealService()
	if err != nil {
		return nil, fmt.Errorf("tạo DealService: %w", err)
	}
	taskService, err := crmvc.NewTaskService()
	if err != nil {
		return nil, fmt.Errorf("tạo TaskService: %w", err)
	}
	meetingService, err := crmvc.NewMeetingService()
	if err != nil {
		return nil, fmt.Errorf("tạo MeetingService: %w", err)
	}
	return &AnalyticsService{
		customerService: customerService,
		dealService:     dealService,
		taskService:     taskService,
		meetingService:  meetingService,
	}, nil
}

// GetDashboardStats nạp toàn bộ dữ liệu CRM và tính chỉ số dashboard.
// Mốc `now` được chốt một lần để mọi cửa sổ thời gian nhất quán với nhau.
func (s *AnalyticsService) GetDashboardStats(ctx context.Context) (*analyticsdto.DashboardStatsResponse, error) {
	customers, err := s.customerService.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	deals, err := s.dealService.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskService.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	meetings, err := s.meetingService.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	stats := ComputeDashboardStats(time.Now(), customers, deals, tasks, meetings)
	return &stats, nil
}

// ComputeDashboardStats tính toàn bộ chỉ số dashboard tại mốc thời gian now.
// Mọi phép chia có mẫu số 0 trả về 0 thay vì NaN/Inf. Làm tròn chỉ thực hiện
// một lần ở đầu ra: phần trăm 1 chữ số, tiền tệ 2 chữ số thập phân.
func ComputeDashboardStats(
	now time.Time,
	customers []crmmodels.Customer,
	deals []crmmodels.Deal,
	tasks []crmmodels.Task,
	meetings []crmmodels.Meeting,
) analyticsdto.DashboardStatsResponse {
	nowMs := now.UnixMilli()

	// Cửa sổ so sánh tháng: tháng hiện tại [đầu tháng, now),
	// tháng trước trọn vẹn [đầu tháng trước, đầu tháng này).
	curMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := curMonthStart.AddDate(0, -1, 0)
	curMonthStartMs := curMonthStart.UnixMilli()
	prevMonthStartMs := prevMonthStart.UnixMilli()

	// Khách hàng
	var customersThisMonth, customersPrevMonth int64
	for _, c := range customers {
		switch {
		case c.CreatedAt >= curMonthStartMs && c.CreatedAt < nowMs:
			customersThisMonth++
		case c.CreatedAt >= prevMonthStartMs && c.CreatedAt < curMonthStartMs:
			customersPrevMonth++
		}
	}
	customerCount := int64(len(customers))

	// Deal: totalSales cộng value của MỌI deal, không riêng closed_won
	var activeDeals, closedWonCount, totalDeals int64
	var dealsThisMonth, dealsPrevMonth int64
	var totalSalesRaw float64
	for _, d := range deals {
		totalDeals++
		totalSalesRaw += d.Value
		if d.Stage.IsOpen() {
			activeDeals++
		}
		if d.Stage == crmmodels.DealStageClosedWon {
			closedWonCount++
		}
		switch {
		case d.CreatedAt >= curMonthStartMs && d.CreatedAt < nowMs:
			dealsThisMonth++
		case d.CreatedAt >= prevMonthStartMs && d.CreatedAt < curMonthStartMs:
			dealsPrevMonth++
		}
	}

	// Meeting
	var upcomingMeetings int64
	var meetingsThisMonth, meetingsPrevMonth int64
	for _, m := range meetings {
		if m.StartTime >= nowMs && m.Status == crmmodels.MeetingStatusScheduled {
			upcomingMeetings++
		}
		switch {
		case m.CreatedAt >= curMonthStartMs && m.CreatedAt < nowMs:
			meetingsThisMonth++
		case m.CreatedAt >= prevMonthStartMs && m.CreatedAt < curMonthStartMs:
			meetingsPrevMonth++
		}
	}

	// Task: đến hạn hôm nay theo ngày lịch tại múi giờ của now
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	todayStartMs := todayStart.UnixMilli()
	tomorrowStartMs := tomorrowStart.UnixMilli()

	var tasksDueToday, completedTasks int64
	for _, t := range tasks {
		if t.DueDate >= todayStartMs && t.DueDate < tomorrowStartMs && !t.Status.IsDone() {
			tasksDueToday++
		}
		if t.Status == crmmodels.TaskStatusCompleted {
			completedTasks++
		}
	}
	totalTasks := int64(len(tasks))

	var taskCompletion float64
	if totalTasks > 0 {
		taskCompletion = float64(completedTasks) / float64(totalTasks) * 100
	}

	var avgDealSize float64
	if totalDeals > 0 {
		avgDealSize = totalSalesRaw / float64(totalDeals)
	}

	var winRate float64
	if totalDeals > 0 {
		winRate = float64(closedWonCount) / float64(totalDeals) * 100
	}

	// Retention: khách đầu kỳ = cuối kỳ trừ khách mới trong tháng
	var retentionRate float64
	startingCustomers := customerCount - customersThisMonth
	if startingCustomers > 0 {
		retentionRate = float64(customerCount-customersThisMonth) / float64(startingCustomers) * 100
	}

	return analyticsdto.DashboardStatsResponse{
		CustomerCount:         customerCount,
		CustomerGrowth:        round1(percentChange(customersThisMonth, customersPrevMonth)),
		ActiveDeals:           activeDeals,
		DealChange:            round1(percentChange(dealsThisMonth, dealsPrevMonth)),
		UpcomingMeetings:      upcomingMeetings,
		MeetingChange:         round1(percentChange(meetingsThisMonth, meetingsPrevMonth)),
		TasksDueToday:         tasksDueToday,
		TotalTasks:            totalTasks,
		TaskCompletion:        round1(taskCompletion),
		TotalSales:            round2(totalSalesRaw),
		AvgDealSize:           round2(avgDealSize),
		WinRate:               round1(winRate),
		CustomerRetentionRate: round1(retentionRate),
	}
}

// percentChange tính % thay đổi của current so với previous.
// previous == 0 trả về 0 (không có baseline để so).
func percentChange(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

// round1 làm tròn 1 chữ số thập phân.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 làm tròn 2 chữ số thập phân.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
