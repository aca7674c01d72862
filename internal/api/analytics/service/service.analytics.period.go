// Package analyticsvc - Doanh số theo kỳ: sinh dãy bucket thời gian theo
// period rồi cộng dồn value của deal vào từng bucket theo createdAt.
package analyticsvc

import (
	"context"
	"fmt"
	"strconv"
	"time"

	analyticsdto "crm_backend/internal/api/analytics/dto"
	crmmodels "crm_backend/internal/api/crm/models"
	"crm_backend/internal/common"
)

// Các giá trị period được hỗ trợ.
const (
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
)

// GetSalesByPeriod nạp toàn bộ deal và trả doanh số theo kỳ.
func (s *AnalyticsService) GetSalesByPeriod(ctx context.Context, period string) ([]analyticsdto.PeriodBucketItem, error) {
	buckets, err := BuildPeriodBuckets(period, time.Now())
	if err != nil {
		return nil, err
	}
	deals, err := s.dealService.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	return AssignDealsToBuckets(buckets, deals), nil
}

// BuildPeriodBuckets sinh dãy bucket thời gian kết thúc tại kỳ hiện tại,
// value/count khởi tạo 0. Period không hợp lệ trả lỗi VAL (HTTP 400).
//
//   - weekly:    8 cửa sổ 7 ngày trượt, neo theo đúng giờ-phút của now
//     (không căn về nửa đêm), nhãn "Week 1".."Week 8"
//   - monthly:   6 tháng lịch, nhãn viết tắt tháng ("Jan".."Dec")
//   - quarterly: 4 quý, nhãn "Q<n> <năm>"
//   - yearly:    5 năm, nhãn là năm ("2024")
//
// Bucket theo lịch (monthly/quarterly/yearly) bắt đầu 00:00:00.000 và kết
// thúc tại mốc đầu kỳ kế tiếp trừ 1ms, nên membership inclusive hai đầu
// không bị chồng lấn giữa các bucket kề nhau.
func BuildPeriodBuckets(period string, now time.Time) ([]analyticsdto.PeriodBucketItem, error) {
	switch period {
	case PeriodWeekly:
		buckets := make([]analyticsdto.PeriodBucketItem, 0, 8)
		for i := 1; i <= 8; i++ {
			start := now.Add(-time.Duration(9-i) * 7 * 24 * time.Hour)
			end := now.Add(-time.Duration(8-i) * 7 * 24 * time.Hour)
			buckets = append(buckets, analyticsdto.PeriodBucketItem{
				Name:      fmt.Sprintf("Week %d", i),
				StartDate: start.UnixMilli(),
				EndDate:   end.UnixMilli(),
			})
		}
		return buckets, nil

	case PeriodMonthly:
		buckets := make([]analyticsdto.PeriodBucketItem, 0, 6)
		for k := 5; k >= 0; k-- {
			start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -k, 0)
			end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
			buckets = append(buckets, analyticsdto.PeriodBucketItem{
				Name:      start.Format("Jan"),
				StartDate: start.UnixMilli(),
				EndDate:   end.UnixMilli(),
			})
		}
		return buckets, nil

	case PeriodQuarterly:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		curQuarterStart := time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
		buckets := make([]analyticsdto.PeriodBucketItem, 0, 4)
		for k := 3; k >= 0; k-- {
			start := curQuarterStart.AddDate(0, -3*k, 0)
			end := start.AddDate(0, 3, 0).Add(-time.Millisecond)
			quarter := (int(start.Month())-1)/3 + 1
			buckets = append(buckets, analyticsdto.PeriodBucketItem{
				Name:      fmt.Sprintf("Q%d %d", quarter, start.Year()),
				StartDate: start.UnixMilli(),
				EndDate:   end.UnixMilli(),
			})
		}
		return buckets, nil

	case PeriodYearly:
		buckets := make([]analyticsdto.PeriodBucketItem, 0, 5)
		for k := 4; k >= 0; k-- {
			start := time.Date(now.Year()-k, time.January, 1, 0, 0, 0, 0, now.Location())
			end := start.AddDate(1, 0, 0).Add(-time.Millisecond)
			buckets = append(buckets, analyticsdto.PeriodBucketItem{
				Name:      strconv.Itoa(start.Year()),
				StartDate: start.UnixMilli(),
				EndDate:   end.UnixMilli(),
			})
		}
		return buckets, nil

	default:
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("period không hợp lệ: %q (hỗ trợ: weekly, monthly, quarterly, yearly)", period),
			common.StatusBadRequest,
			nil,
		)
	}
}

// AssignDealsToBuckets cộng dồn value/count của deal vào mọi bucket mà
// createdAt của deal rơi vào, inclusive hai đầu [startDate, endDate].
// Các bucket được sinh không chồng lấn nên mỗi deal thực tế rơi vào tối đa
// một bucket. Deal ngoài cửa sổ bị bỏ qua. Value làm tròn 2 chữ số ở đầu ra.
func AssignDealsToBuckets(buckets []analyticsdto.PeriodBucketItem, deals []crmmodels.Deal) []analyticsdto.PeriodBucketItem {
	result := make([]analyticsdto.PeriodBucketItem, len(buckets))
	copy(result, buckets)

	for _, d := range deals {
		for i := range result {
			if d.CreatedAt >= result[i].StartDate && d.CreatedAt <= result[i].EndDate {
				result[i].Value += d.Value
				result[i].Count++
			}
		}
	}
	for i := range result {
		result[i].Value = round2(result[i].Value)
	}
	return result
}
