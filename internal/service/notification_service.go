package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NotificationKind 通知类型
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notification 表示一条短生命周期的通知消息
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// NotificationService 定义通知队列业务逻辑接口
// 任何组件都可以追加通知；通知按插入顺序排列，多条可同时可见，
// 通过显式撤销或超过展示时长后消失
type NotificationService interface {
	// Push 追加一条通知，返回通知ID
	Push(message string, kind NotificationKind) string

	// Dismiss 显式撤销一条通知，ID不存在时为空操作
	Dismiss(id string)

	// Active 返回当前仍然可见的通知，按插入顺序；过期的通知在此被清理
	Active() []*Notification
}

// notificationService 实现NotificationService接口
type notificationService struct {
	mu       sync.Mutex
	queue    []*Notification
	lifetime time.Duration
	now      func() time.Time // 可注入时钟，测试用
}

// NewNotificationService 创建通知服务实例
// lifetime 为每条通知的展示时长
func NewNotificationService(lifetime time.Duration) NotificationService {
	return &notificationService{
		lifetime: lifetime,
		now:      time.Now,
	}
}

// Push 追加一条通知
func (s *notificationService) Push(message string, kind NotificationKind) string {
	if kind == "" {
		kind = NotificationSuccess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := &Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Kind:      kind,
		CreatedAt: s.now(),
	}
	n.ExpiresAt = n.CreatedAt.Add(s.lifetime)
	s.queue = append(s.queue, n)

	return n.ID
}

// Dismiss 显式撤销一条通知
func (s *notificationService) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.queue {
		if n.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

// Active 返回当前仍然可见的通知
func (s *notificationService) Active() []*Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	alive := s.queue[:0]
	var result []*Notification
	for _, n := range s.queue {
		if now.Before(n.ExpiresAt) {
			alive = append(alive, n)
			result = append(result, n)
		}
	}
	s.queue = alive

	return result
}
