package domain

import (
	"sort"
	"strings"
)

// SortOrder 定义价格排序方式
type SortOrder string

const (
	SortNone      SortOrder = "none" // 保持目录原始顺序
	SortPriceAsc  SortOrder = "asc"  // 价格升序
	SortPriceDesc SortOrder = "desc" // 价格降序
)

// CategoryAll 表示不按分类过滤
const CategoryAll = "all"

// FilterCriteria 表示商品列表的过滤与排序条件
// 条件之间是AND关系；MinRating为0时表示不过滤评分
type FilterCriteria struct {
	Query     string    `json:"query"`
	Category  string    `json:"category"`
	MinPrice  float64   `json:"min_price"`
	MaxPrice  float64   `json:"max_price"`
	MinRating float64   `json:"min_rating"`
	Sort      SortOrder `json:"sort"`
}

// Normalize 返回规范化后的过滤条件：
// 1) 空分类视为"all"；
// 2) 价格区间min>max时交换两端（滑块快速拖拽可能产生交叉区间）；
// 3) 空排序视为不排序。
func (c FilterCriteria) Normalize() FilterCriteria {
	if c.Category == "" {
		c.Category = CategoryAll
	}
	if c.MaxPrice > 0 && c.MinPrice > c.MaxPrice {
		c.MinPrice, c.MaxPrice = c.MaxPrice, c.MinPrice
	}
	if c.Sort == "" {
		c.Sort = SortNone
	}
	return c
}

// matches 判断单个商品是否同时满足所有激活的过滤条件
func (c FilterCriteria) matches(p *Product) bool {
	if !p.MatchesKeyword(strings.TrimSpace(c.Query)) {
		return false
	}
	if c.Category != CategoryAll && p.Category != c.Category {
		return false
	}
	if p.Price < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && p.Price > c.MaxPrice {
		return false
	}
	if c.MinRating > 0 && p.Rating.Rate < c.MinRating {
		return false
	}
	return true
}

// ApplyFilter 对商品目录应用过滤与排序，返回新的切片
// 纯函数：不修改输入，相同输入总是产生相同内容的结果；
// 排序使用稳定排序，价格相同的商品保持目录原始顺序
func ApplyFilter(products []*Product, criteria FilterCriteria) []*Product {
	criteria = criteria.Normalize()

	result := make([]*Product, 0, len(products))
	for _, p := range products {
		if criteria.matches(p) {
			result = append(result, p)
		}
	}

	switch criteria.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}

	return result
}

// containsFold 大小写不敏感的子串匹配
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
