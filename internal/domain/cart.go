package domain

// CartItem 表示购物车中的一个条目：商品及其数量
// 同一商品在购物车中最多只有一个条目，以商品ID作为条目标识
type CartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"` // 始终 >= 1
}

// Subtotal 返回该条目的小计金额
func (i *CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// CartSummary 表示购物车的派生汇总信息，每次读取时重新计算
type CartSummary struct {
	Items      []*CartItem `json:"items"`
	TotalItems int         `json:"total_items"` // 所有条目数量之和
	TotalPrice float64     `json:"total_price"` // 所有条目小计之和
}
