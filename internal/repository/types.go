package repository

// 商品排序方式
const (
	ProductSortDefault   = ""
	ProductSortPrice     = "price"
	ProductSortPriceDesc = "price_desc"
)

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page       int
	PageSize   int
	Sort       string
	Keyword    string
	Available  *bool
	CategoryID *uint
}

// ReviewListFilter 查询评价列表的过滤条件
type ReviewListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
	UserID    uint
}
