// Package basemodels chứa các model dùng chung cho tầng service/handler cơ sở.
package basemodels

// PaginateResult chứa kết quả phân trang cho một truy vấn Find.
// Type Parameters:
//   - T: Kiểu dữ liệu của model
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`           // Trang hiện tại
	Limit     int64 `json:"limit" bson:"limit"`         // Số lượng phần tử trên một trang
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // Số lượng phần tử trả về trong trang này
	Items     []T   `json:"items" bson:"items"`         // Danh sách phần tử
	Total     int64 `json:"total" bson:"total"`         // Tổng số phần tử khớp filter
	TotalPage int64 `json:"totalPage" bson:"totalPage"` // Tổng số trang
}

// CountResult chứa kết quả đếm document theo filter.
type CountResult struct {
	TotalCount int64 `json:"totalCount" bson:"totalCount"` // Tổng số document khớp filter
	Limit      int64 `json:"limit" bson:"limit"`           // Limit dùng để tính tổng số trang
	TotalPage  int64 `json:"totalPage" bson:"totalPage"`   // Tổng số trang với limit tương ứng
}
