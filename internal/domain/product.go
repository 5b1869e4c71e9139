// Package domain 定义商品相关的业务领域模型和核心业务规则。
package domain

// Rating 表示商品的平均评分和评价数量
type Rating struct {
	Rate  float64 `json:"rate"`  // 平均评分，范围0-5
	Count int     `json:"count"` // 评价数量
}

// Product 表示商品领域模型
// 商品数据来源于静态目录，运行期间不会被创建或修改
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// MatchesKeyword 判断商品是否命中关键词搜索
// 在标题、描述、分类三个字段上做大小写不敏感的子串匹配，任一命中即为命中
func (p *Product) MatchesKeyword(keyword string) bool {
	if keyword == "" {
		return true
	}
	return containsFold(p.Title, keyword) ||
		containsFold(p.Description, keyword) ||
		containsFold(p.Category, keyword)
}

// ProductStats 表示目录统计信息
type ProductStats struct {
	TotalProducts int     `json:"total_products"`
	AveragePrice  float64 `json:"average_price"`
	HighestPrice  float64 `json:"highest_price"`
	LowestPrice   float64 `json:"lowest_price"`
}

// ComputeProductStats 根据商品列表计算目录统计信息
// 空列表返回零值统计
func ComputeProductStats(products []*Product) *ProductStats {
	stats := &ProductStats{TotalProducts: len(products)}
	if len(products) == 0 {
		return stats
	}

	sum := 0.0
	stats.HighestPrice = products[0].Price
	stats.LowestPrice = products[0].Price
	for _, p := range products {
		sum += p.Price
		if p.Price > stats.HighestPrice {
			stats.HighestPrice = p.Price
		}
		if p.Price < stats.LowestPrice {
			stats.LowestPrice = p.Price
		}
	}
	stats.AveragePrice = sum / float64(len(products))

	return stats
}
