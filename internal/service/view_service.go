package service

import (
	"errors"
	"sync"
)

// View 表示顶层可见的屏幕
type View string

const (
	ViewHome      View = "home"
	ViewCart      View = "cart"
	ViewFavorites View = "favorites"
	ViewStats     View = "stats"
)

// ErrUnknownView 非法的视图名
var ErrUnknownView = errors.New("unknown view")

// ViewService 定义顶层视图状态接口
// 单一枚举决定当前可见屏幕；修改搜索词总是强制回到首页
type ViewService interface {
	// Current 返回当前视图
	Current() View

	// Navigate 切换到指定视图
	Navigate(view View) error

	// SetSearchQuery 设置搜索词并强制回到首页
	SetSearchQuery(query string)

	// SearchQuery 返回当前搜索词
	SearchQuery() string
}

// viewService 实现ViewService接口
type viewService struct {
	mu     sync.Mutex
	view   View
	search string
}

// NewViewService 创建视图服务实例，初始视图为首页
func NewViewService() ViewService {
	return &viewService{view: ViewHome}
}

// Current 返回当前视图
func (s *viewService) Current() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Navigate 切换到指定视图
func (s *viewService) Navigate(view View) error {
	switch view {
	case ViewHome, ViewCart, ViewFavorites, ViewStats:
	default:
		return ErrUnknownView
	}

	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
	return nil
}

// SetSearchQuery 设置搜索词并强制回到首页
func (s *viewService) SetSearchQuery(query string) {
	s.mu.Lock()
	s.search = query
	s.view = ViewHome
	s.mu.Unlock()
}

// SearchQuery 返回当前搜索词
func (s *viewService) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}
