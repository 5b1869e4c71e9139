package service

import (
	"sync"

	"github.com/MorseWayne/mercado_shop/internal/repo"
)

// PreferencesService 定义用户偏好业务逻辑接口
type PreferencesService interface {
	// Theme 返回当前主题（light 或 dark）
	Theme() string

	// ToggleTheme 在 light 和 dark 之间切换并持久化，返回切换后的主题
	ToggleTheme() (string, error)
}

// preferencesService 实现PreferencesService接口
type preferencesService struct {
	mu    sync.Mutex
	theme string
	repo  repo.PreferencesRepository
}

// NewPreferencesService 创建偏好服务实例，启动时从持久化存储加载主题
func NewPreferencesService(preferencesRepo repo.PreferencesRepository) PreferencesService {
	return &preferencesService{
		theme: preferencesRepo.Theme(),
		repo:  preferencesRepo,
	}
}

// Theme 返回当前主题
func (s *preferencesService) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme 切换主题并持久化
func (s *preferencesService) ToggleTheme() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := repo.ThemeDark
	if s.theme == repo.ThemeDark {
		next = repo.ThemeLight
	}

	if err := s.repo.SaveTheme(next); err != nil {
		return s.theme, err
	}
	s.theme = next

	return s.theme, nil
}
