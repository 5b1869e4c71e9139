package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/domain"
	"github.com/MorseWayne/mercado_shop/internal/repo"
)

// FavoritesService 定义收藏列表业务逻辑接口
// 集合语义：同一商品ID最多出现一次；每次变更同步持久化完整集合
type FavoritesService interface {
	// AddToFavorites 收藏商品，已收藏时为空操作（保留首次写入的快照）
	AddToFavorites(product *domain.Product)

	// RemoveFromFavorites 取消收藏，未收藏时为空操作
	RemoveFromFavorites(productID int64)

	// IsFavorite 查询商品是否已收藏
	IsFavorite(productID int64) bool

	// List 返回收藏的商品列表，保持加入顺序
	List() []*domain.Product

	// Count 返回收藏数量
	Count() int
}

// favoritesService 实现FavoritesService接口
type favoritesService struct {
	mu        sync.Mutex
	favorites []*domain.Product
	repo      repo.FavoritesRepository
	logger    *zap.Logger
}

// NewFavoritesService 创建收藏服务实例
// 启动时从持久化存储加载已有收藏，数据损坏时从空集合开始
func NewFavoritesService(favoritesRepo repo.FavoritesRepository, logger *zap.Logger) FavoritesService {
	return &favoritesService{
		favorites: favoritesRepo.Load(),
		repo:      favoritesRepo,
		logger:    logger,
	}
}

// AddToFavorites 收藏商品
func (s *favoritesService) AddToFavorites(product *domain.Product) {
	if product == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.favorites {
		if p.ID == product.ID {
			return
		}
	}
	s.favorites = append(s.favorites, product)
	s.persistLocked()
}

// RemoveFromFavorites 取消收藏
func (s *favoritesService) RemoveFromFavorites(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.favorites {
		if p.ID == productID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// IsFavorite 查询商品是否已收藏
func (s *favoritesService) IsFavorite(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.favorites {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// List 返回收藏的商品列表快照
func (s *favoritesService) List() []*domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Product, len(s.favorites))
	copy(result, s.favorites)
	return result
}

// Count 返回收藏数量
func (s *favoritesService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.favorites)
}

// persistLocked 在持锁状态下同步持久化完整集合
// 持久化失败只记录日志：收藏是便利状态，不应阻断用户操作
func (s *favoritesService) persistLocked() {
	if err := s.repo.Save(s.favorites); err != nil {
		s.logger.Warn("failed to persist favorites", zap.Error(err))
	}
}
