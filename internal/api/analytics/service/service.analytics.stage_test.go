// Package analyticsvc - Test GroupDealsByStage: gom nhóm, thứ tự, bỏ stage rỗng.
package analyticsvc

import (
	"testing"

	crmmodels "crm_backend/internal/api/crm/models"
)

func TestGroupDealsByStage_GomNhomVaSapXep(t *testing.T) {
	deals := []crmmodels.Deal{
		{Value: 100, Stage: crmmodels.DealStageClosedWon},
		{Value: 200, Stage: crmmodels.DealStageLead},
		{Value: 50, Stage: crmmodels.DealStageLead},
	}

	items := GroupDealsByStage(deals)

	if len(items) != 2 {
		t.Fatalf("số bucket = %d, muốn 2, có: %+v", len(items), items)
	}
	// Sắp xếp theo tên stage tăng dần: closed_won < lead
	if items[0].Stage != "closed_won" || items[1].Stage != "lead" {
		t.Errorf("thứ tự stage = [%s, %s], muốn [closed_won, lead]", items[0].Stage, items[1].Stage)
	}
	if items[0].Count != 1 || items[0].TotalValue != 100 {
		t.Errorf("bucket closed_won = {count: %d, total: %v}, muốn {1, 100}", items[0].Count, items[0].TotalValue)
	}
	if items[1].Count != 2 || items[1].TotalValue != 250 {
		t.Errorf("bucket lead = {count: %d, total: %v}, muốn {2, 250}", items[1].Count, items[1].TotalValue)
	}

	// Tổng count phải bằng tổng số deal
	var total int64
	for _, it := range items {
		total += it.Count
	}
	if total != int64(len(deals)) {
		t.Errorf("Σ count = %d, muốn %d", total, len(deals))
	}
}

func TestGroupDealsByStage_BoQuaStageKhongCoDeal(t *testing.T) {
	deals := []crmmodels.Deal{
		{Value: 10, Stage: crmmodels.DealStageProposal},
	}

	items := GroupDealsByStage(deals)

	if len(items) != 1 {
		t.Fatalf("số bucket = %d, muốn 1 (stage không có deal phải bị bỏ qua)", len(items))
	}
	if items[0].Stage != "proposal" {
		t.Errorf("stage = %s, muốn proposal", items[0].Stage)
	}
}

func TestGroupDealsByStage_InputRong(t *testing.T) {
	items := GroupDealsByStage(nil)
	if len(items) != 0 {
		t.Errorf("input rỗng phải cho kết quả rỗng, có: %+v", items)
	}
}

func TestGroupDealsByStage_LamTronTotalValue(t *testing.T) {
	// 0.1 + 0.2 trong float64 là 0.30000000000000004, đầu ra phải làm tròn 2 chữ số
	deals := []crmmodels.Deal{
		{Value: 0.1, Stage: crmmodels.DealStageLead},
		{Value: 0.2, Stage: crmmodels.DealStageLead},
	}

	items := GroupDealsByStage(deals)

	if len(items) != 1 {
		t.Fatalf("số bucket = %d, muốn 1", len(items))
	}
	if items[0].TotalValue != 0.3 {
		t.Errorf("totalValue = %v, muốn 0.3", items[0].TotalValue)
	}
}
