package service

import (
	"sync"

	"github.com/MorseWayne/mercado_shop/internal/domain"
)

// CartService 定义购物车业务逻辑接口
// 购物车是进程级共享状态，在启动时构造并注入到各个调用方；
// 状态仅存于内存，进程重启后不保留（与收藏不同，这是刻意的易失语义）
type CartService interface {
	// AddToCart 添加商品：已有条目时数量加1，否则新建数量为1的条目
	AddToCart(product *domain.Product)

	// UpdateQuantity 设置条目数量，数量<=0时整个条目被移除；商品不存在时为空操作
	UpdateQuantity(productID int64, quantity int)

	// RemoveFromCart 移除条目，商品不存在时为空操作
	RemoveFromCart(productID int64)

	// ClearCart 清空购物车
	ClearCart()

	// Items 返回购物车条目，保持加入顺序
	Items() []*domain.CartItem

	// TotalItems 所有条目数量之和，每次读取重新计算
	TotalItems() int

	// TotalPrice 所有条目小计之和，每次读取重新计算
	TotalPrice() float64

	// Summary 返回条目和派生汇总
	Summary() *domain.CartSummary
}

// cartService 实现CartService接口
type cartService struct {
	mu    sync.Mutex
	items []*domain.CartItem // 保持加入顺序；同一商品ID最多一个条目
}

// NewCartService 创建购物车服务实例
func NewCartService() CartService {
	return &cartService{}
}

// AddToCart 添加商品
func (s *cartService) AddToCart(product *domain.Product) {
	if product == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.Product.ID == product.ID {
			item.Quantity++
			return
		}
	}
	s.items = append(s.items, &domain.CartItem{Product: product, Quantity: 1})
}

// UpdateQuantity 设置条目数量
func (s *cartService) UpdateQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}

	for _, item := range s.items {
		if item.Product.ID == productID {
			item.Quantity = quantity
			return
		}
	}
}

// RemoveFromCart 移除条目
func (s *cartService) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// removeLocked 在持锁状态下移除条目
func (s *cartService) removeLocked(productID int64) {
	for i, item := range s.items {
		if item.Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// ClearCart 清空购物车
func (s *cartService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items 返回购物车条目快照
func (s *cartService) Items() []*domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked 在持锁状态下复制条目
// 条目按值复制，后续的数量变更不会影响已返回的快照；
// Product 指向不可变的目录数据，可以安全共享
func (s *cartService) snapshotLocked() []*domain.CartItem {
	result := make([]*domain.CartItem, len(s.items))
	for i, item := range s.items {
		snapshot := *item
		result[i] = &snapshot
	}
	return result
}

// TotalItems 所有条目数量之和
func (s *cartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice 所有条目小计之和
func (s *cartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// Summary 返回条目和派生汇总
func (s *cartService) Summary() *domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := &domain.CartSummary{Items: s.snapshotLocked()}
	for _, item := range s.items {
		summary.TotalItems += item.Quantity
		summary.TotalPrice += item.Subtotal()
	}
	return summary
}
