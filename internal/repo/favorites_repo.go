// Package repo 提供收藏列表的本地持久化实现
package repo

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/domain"
	"github.com/MorseWayne/mercado_shop/internal/kvstore"
)

// favoritesStorageKey 收藏列表在键值存储中的固定键
const favoritesStorageKey = "ecommerce_favorites"

// FavoritesRepository 定义收藏列表的持久化接口
// 每次保存都写入完整集合，而不是增量修改
type FavoritesRepository interface {
	// Load 加载持久化的收藏列表
	// 数据缺失或损坏时返回空列表而不是错误：收藏是非关键的便利状态
	Load() []*domain.Product

	// Save 持久化完整的收藏列表
	Save(favorites []*domain.Product) error
}

// kvFavoritesRepository 基于本地键值存储的收藏仓储
type kvFavoritesRepository struct {
	store  kvstore.Store
	logger *zap.Logger
}

// NewFavoritesRepository 创建收藏仓储实例
func NewFavoritesRepository(store kvstore.Store, logger *zap.Logger) FavoritesRepository {
	return &kvFavoritesRepository{store: store, logger: logger}
}

// Load 加载收藏列表，损坏的数据按空列表处理（fail closed）
func (r *kvFavoritesRepository) Load() []*domain.Product {
	raw, ok, err := r.store.Get(favoritesStorageKey)
	if err != nil {
		r.logger.Warn("failed to read favorites, starting empty", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var favorites []*domain.Product
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		r.logger.Warn("corrupt favorites data, starting empty", zap.Error(err))
		return nil
	}

	return favorites
}

// Save 持久化完整的收藏列表
func (r *kvFavoritesRepository) Save(favorites []*domain.Product) error {
	if favorites == nil {
		favorites = []*domain.Product{}
	}

	data, err := json.MarshalIndent(favorites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}

	if err := r.store.Set(favoritesStorageKey, string(data)); err != nil {
		return fmt.Errorf("persist favorites: %w", err)
	}

	return nil
}
