// Package analyticsvc - Test BuildPeriodBuckets/AssignDealsToBuckets: nhãn,
// biên bucket, membership inclusive và period không hợp lệ.
package analyticsvc

import (
	"errors"
	"testing"
	"time"

	analyticsdto "crm_backend/internal/api/analytics/dto"
	crmmodels "crm_backend/internal/api/crm/models"
	"crm_backend/internal/common"
)

// findBucket tìm bucket theo nhãn, fail test nếu không có.
func findBucket(t *testing.T, buckets []analyticsdto.PeriodBucketItem, name string) analyticsdto.PeriodBucketItem {
	t.Helper()
	for _, b := range buckets {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("không tìm thấy bucket %q trong: %+v", name, buckets)
	return analyticsdto.PeriodBucketItem{}
}

func TestBuildPeriodBuckets_MonthlyNhan(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	buckets, err := BuildPeriodBuckets(PeriodMonthly, now)
	if err != nil {
		t.Fatalf("BuildPeriodBuckets monthly lỗi: %v", err)
	}
	if len(buckets) != 6 {
		t.Fatalf("số bucket = %d, muốn 6", len(buckets))
	}

	wantNames := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	for i, want := range wantNames {
		if buckets[i].Name != want {
			t.Errorf("bucket %d có nhãn %q, muốn %q", i, buckets[i].Name, want)
		}
	}

	// Bucket đầu: tháng 10/2023, căn theo lịch
	wantStart := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	wantEnd := time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond).UnixMilli()
	if buckets[0].StartDate != wantStart {
		t.Errorf("bucket Oct startDate = %d, muốn %d", buckets[0].StartDate, wantStart)
	}
	if buckets[0].EndDate != wantEnd {
		t.Errorf("bucket Oct endDate = %d, muốn %d", buckets[0].EndDate, wantEnd)
	}

	// Bucket cuối: tháng hiện tại
	wantStart = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if buckets[5].StartDate != wantStart {
		t.Errorf("bucket Mar startDate = %d, muốn %d", buckets[5].StartDate, wantStart)
	}
}

func TestBuildPeriodBuckets_WeeklyBien(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	buckets, err := BuildPeriodBuckets(PeriodWeekly, now)
	if err != nil {
		t.Fatalf("BuildPeriodBuckets weekly lỗi: %v", err)
	}
	if len(buckets) != 8 {
		t.Fatalf("số bucket = %d, muốn 8", len(buckets))
	}

	// Bucket 1 (cũ nhất): [2024-04-15T12:00, 2024-04-22T12:00], neo theo giờ của now
	wantStart := time.Date(2024, time.April, 15, 12, 0, 0, 0, time.UTC).UnixMilli()
	wantEnd := time.Date(2024, time.April, 22, 12, 0, 0, 0, time.UTC).UnixMilli()
	if buckets[0].StartDate != wantStart || buckets[0].EndDate != wantEnd {
		t.Errorf("bucket Week 1 = [%d, %d], muốn [%d, %d]", buckets[0].StartDate, buckets[0].EndDate, wantStart, wantEnd)
	}

	// Bucket 8 (mới nhất): [2024-06-03T12:00, now]
	wantStart = time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC).UnixMilli()
	if buckets[7].StartDate != wantStart || buckets[7].EndDate != now.UnixMilli() {
		t.Errorf("bucket Week 8 = [%d, %d], muốn [%d, %d]", buckets[7].StartDate, buckets[7].EndDate, wantStart, now.UnixMilli())
	}

	for i := 0; i < 8; i++ {
		want := "Week " + string(rune('1'+i))
		if buckets[i].Name != want {
			t.Errorf("bucket %d có nhãn %q, muốn %q", i, buckets[i].Name, want)
		}
	}
}

func TestBuildPeriodBuckets_Quarterly(t *testing.T) {
	now := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	buckets, err := BuildPeriodBuckets(PeriodQuarterly, now)
	if err != nil {
		t.Fatalf("BuildPeriodBuckets quarterly lỗi: %v", err)
	}
	if len(buckets) != 4 {
		t.Fatalf("số bucket = %d, muốn 4", len(buckets))
	}

	wantNames := []string{"Q3 2023", "Q4 2023", "Q1 2024", "Q2 2024"}
	for i, want := range wantNames {
		if buckets[i].Name != want {
			t.Errorf("bucket %d có nhãn %q, muốn %q", i, buckets[i].Name, want)
		}
	}

	// Quý hiện tại: [2024-04-01, 2024-07-01 - 1ms]
	wantStart := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	wantEnd := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond).UnixMilli()
	if buckets[3].StartDate != wantStart || buckets[3].EndDate != wantEnd {
		t.Errorf("bucket Q2 2024 = [%d, %d], muốn [%d, %d]", buckets[3].StartDate, buckets[3].EndDate, wantStart, wantEnd)
	}
}

func TestBuildPeriodBuckets_Yearly(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	buckets, err := BuildPeriodBuckets(PeriodYearly, now)
	if err != nil {
		t.Fatalf("BuildPeriodBuckets yearly lỗi: %v", err)
	}
	if len(buckets) != 5 {
		t.Fatalf("số bucket = %d, muốn 5", len(buckets))
	}

	wantNames := []string{"2020", "2021", "2022", "2023", "2024"}
	for i, want := range wantNames {
		if buckets[i].Name != want {
			t.Errorf("bucket %d có nhãn %q, muốn %q", i, buckets[i].Name, want)
		}
	}
}

func TestBuildPeriodBuckets_PeriodKhongHopLe(t *testing.T) {
	_, err := BuildPeriodBuckets("daily", time.Now())
	if err == nil {
		t.Fatal("period không hợp lệ phải trả lỗi")
	}

	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi phải là *common.Error, có: %T", err)
	}
	if customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("statusCode = %d, muốn %d", customErr.StatusCode, common.StatusBadRequest)
	}
	if customErr.Code.Code != common.ErrCodeValidationInput.Code {
		t.Errorf("mã lỗi = %s, muốn %s", customErr.Code.Code, common.ErrCodeValidationInput.Code)
	}
}

func TestAssignDealsToBuckets_DealRong(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	buckets, err := BuildPeriodBuckets(PeriodMonthly, now)
	if err != nil {
		t.Fatalf("BuildPeriodBuckets lỗi: %v", err)
	}

	result := AssignDealsToBuckets(buckets, nil)

	if len(result) != 6 {
		t.Fatalf("deal rỗng vẫn phải trả đủ %d bucket, có %d", 6, len(result))
	}
	for i, b := range result {
		if b.Value != 0 || b.Count != 0 {
			t.Errorf("bucket %d phải có value/count = 0, có: %+v", i, b)
		}
	}
}

func TestAssignDealsToBuckets_CuoiThangInclusive(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	buckets, err := BuildPeriodBuckets(PeriodMonthly, now)
	if err != nil {
		t.Fatalf("BuildPeriodBuckets lỗi: %v", err)
	}

	// Deal tạo đêm cuối tháng 1 phải vào bucket Jan, không phải Feb
	deals := []crmmodels.Deal{
		{Value: 500, Stage: crmmodels.DealStageClosedWon, CreatedAt: time.Date(2024, time.January, 31, 23, 30, 0, 0, time.UTC).UnixMilli()},
	}

	result := AssignDealsToBuckets(buckets, deals)

	jan := findBucket(t, result, "Jan")
	feb := findBucket(t, result, "Feb")
	if jan.Count != 1 || jan.Value != 500 {
		t.Errorf("bucket Jan = {count: %d, value: %v}, muốn {1, 500}", jan.Count, jan.Value)
	}
	if feb.Count != 0 {
		t.Errorf("bucket Feb count = %d, muốn 0", feb.Count)
	}
}

func TestAssignDealsToBuckets_CongDonVaLamTron(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	buckets, err := BuildPeriodBuckets(PeriodMonthly, now)
	if err != nil {
		t.Fatalf("BuildPeriodBuckets lỗi: %v", err)
	}

	// Mọi stage đều tính; 0.1 + 0.2 phải làm tròn thành 0.3 ở đầu ra
	deals := []crmmodels.Deal{
		{Value: 0.1, Stage: crmmodels.DealStageClosedWon, CreatedAt: time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC).UnixMilli()},
		{Value: 0.2, Stage: crmmodels.DealStageLead, CreatedAt: time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC).UnixMilli()},
		// Ngoài cửa sổ 6 tháng: bỏ qua
		{Value: 999, Stage: crmmodels.DealStageClosedWon, CreatedAt: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()},
	}

	result := AssignDealsToBuckets(buckets, deals)

	var totalCount int64
	for _, b := range result {
		totalCount += b.Count
		if b.Name == "Feb" {
			if b.Count != 2 {
				t.Errorf("bucket Feb count = %d, muốn 2", b.Count)
			}
			if b.Value != 0.3 {
				t.Errorf("bucket Feb value = %v, muốn 0.3", b.Value)
			}
		}
	}
	if totalCount != 2 {
		t.Errorf("tổng count = %d, muốn 2 (deal ngoài cửa sổ phải bị bỏ qua)", totalCount)
	}
}

func TestAssignDealsToBuckets_KhongSuaInput(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	buckets, err := BuildPeriodBuckets(PeriodMonthly, now)
	if err != nil {
		t.Fatalf("BuildPeriodBuckets lỗi: %v", err)
	}

	deals := []crmmodels.Deal{
		{Value: 100, Stage: crmmodels.DealStageClosedWon, CreatedAt: now.UnixMilli()},
	}

	_ = AssignDealsToBuckets(buckets, deals)

	for i, b := range buckets {
		if b.Value != 0 || b.Count != 0 {
			t.Errorf("AssignDealsToBuckets không được sửa slice input, bucket %d: %+v", i, b)
		}
	}
}
