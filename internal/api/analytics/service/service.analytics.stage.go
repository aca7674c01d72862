// Package analyticsvc - Phân bố deal theo giai đoạn pipeline.
package analyticsvc

import (
	"context"
	"sort"

	analyticsdto "crm_backend/internal/api/analytics/dto"
	crmmodels "crm_backend/internal/api/crm/models"
)

// GetDealsByStage nạp toàn bộ deal và gom nhóm theo giai đoạn.
func (s *AnalyticsService) GetDealsByStage(ctx context.Context) ([]analyticsdto.DealStageItem, error) {
	deals, err := s.dealService.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	return GroupDealsByStage(deals), nil
}

// GroupDealsByStage gom deal theo giai đoạn: mỗi giai đoạn xuất hiện ít nhất
// một lần mới có mặt trong kết quả (không trả bucket rỗng), sắp xếp theo tên
// giai đoạn tăng dần. TotalValue làm tròn 2 chữ số thập phân ở đầu ra.
func GroupDealsByStage(deals []crmmodels.Deal) []analyticsdto.DealStageItem {
	type bucket struct {
		count int64
		total float64
	}
	byStage := make(map[string]*bucket)
	for _, d := range deals {
		stage := string(d.Stage)
		b, ok := byStage[stage]
		if !ok {
			b = &bucket{}
			byStage[stage] = b
		}
		b.count++
		b.total += d.Value
	}

	items := make([]analyticsdto.DealStageItem, 0, len(byStage))
	for stage, b := range byStage {
		items = append(items, analyticsdto.DealStageItem{
			Stage:      stage,
			Count:      b.count,
			TotalValue: round2(b.total),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Stage < items[j].Stage })
	return items
}
