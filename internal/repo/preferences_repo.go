// Package repo 提供用户偏好的本地持久化实现
package repo

import (
	"fmt"

	"github.com/MorseWayne/mercado_shop/internal/kvstore"
)

// themeStorageKey 主题偏好在键值存储中的固定键
const themeStorageKey = "ecommerce_theme"

// 合法的主题取值
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// PreferencesRepository 定义用户偏好的持久化接口
type PreferencesRepository interface {
	// Theme 读取主题偏好，缺失或非法值回退为 light
	Theme() string

	// SaveTheme 持久化主题偏好
	SaveTheme(theme string) error
}

// kvPreferencesRepository 基于本地键值存储的偏好仓储
type kvPreferencesRepository struct {
	store kvstore.Store
}

// NewPreferencesRepository 创建偏好仓储实例
func NewPreferencesRepository(store kvstore.Store) PreferencesRepository {
	return &kvPreferencesRepository{store: store}
}

// Theme 读取主题偏好
func (r *kvPreferencesRepository) Theme() string {
	raw, ok, err := r.store.Get(themeStorageKey)
	if err != nil || !ok {
		return ThemeLight
	}
	if raw != ThemeLight && raw != ThemeDark {
		return ThemeLight
	}
	return raw
}

// SaveTheme 持久化主题偏好
func (r *kvPreferencesRepository) SaveTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("invalid theme: %s", theme)
	}
	return r.store.Set(themeStorageKey, theme)
}
