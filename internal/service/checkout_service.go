package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/domain"
)

// 结算流程相关错误定义
var (
	ErrNoCheckoutSession = errors.New("no active checkout session")
	ErrValidationFailed  = errors.New("validation failed")
	ErrNotReviewStep     = errors.New("submit is only allowed from the review step")
	ErrSubmitInFlight    = errors.New("payment already in progress")
	ErrCheckoutComplete  = errors.New("checkout already complete")
	ErrCartEmpty         = errors.New("cart is empty")
)

// CheckoutState 结算流程状态
// 状态机只能在当前步骤校验通过后前进，后退不受限制；
// Submitting 只能从第三步进入，Complete 是终态
type CheckoutState string

const (
	CheckoutStateShipping   CheckoutState = "shipping"   // 第一步：收货信息
	CheckoutStatePayment    CheckoutState = "payment"    // 第二步：支付信息
	CheckoutStateReview     CheckoutState = "review"     // 第三步：订单确认
	CheckoutStateSubmitting CheckoutState = "submitting" // 模拟支付进行中
	CheckoutStateComplete   CheckoutState = "complete"   // 支付完成，终态
)

// step 返回状态对应的步骤序号（1..3）
func (s CheckoutState) step() int {
	switch s {
	case CheckoutStateShipping:
		return 1
	case CheckoutStatePayment:
		return 2
	default:
		return 3
	}
}

// CheckoutConfig 结算流程配置
type CheckoutConfig struct {
	SettleDelay time.Duration // 模拟支付的固定耗时
	ReturnDelay time.Duration // 完成后返回上级视图的延迟
}

// CheckoutSnapshot 表示结算会话的当前状态快照
type CheckoutSnapshot struct {
	State       CheckoutState       `json:"state"`
	Step        int                 `json:"step"`
	Form        domain.CheckoutForm `json:"form"`
	Errors      map[string]string   `json:"errors,omitempty"`
	OrderNumber string              `json:"order_number,omitempty"`
	PaidTotal   float64             `json:"paid_total,omitempty"`
}

// CheckoutService 定义结算流程业务逻辑接口
type CheckoutService interface {
	// Start 开启新的结算会话；购物车为空或已有支付在途时拒绝
	Start() (*CheckoutSnapshot, error)

	// Snapshot 返回当前会话状态
	Snapshot() (*CheckoutSnapshot, error)

	// SetField 设置表单字段并清除该字段的校验错误
	SetField(name, value string) (*CheckoutSnapshot, error)

	// Next 校验当前步骤并前进；校验失败时返回 ErrValidationFailed，
	// 快照中携带字段级错误
	Next() (*CheckoutSnapshot, error)

	// Back 无条件后退一步，最小回到第一步
	Back() (*CheckoutSnapshot, error)

	// Submit 从第三步发起模拟支付
	// 支付是一次性的异步操作，不可取消；完成后恰好一次：
	// 清空购物车、推送成功通知、进入 Complete 状态
	Submit() (*CheckoutSnapshot, error)
}

// checkoutService 实现CheckoutService接口
type checkoutService struct {
	mu            sync.Mutex
	state         CheckoutState
	form          domain.CheckoutForm
	fieldErrors   map[string]string
	orderNumber   string
	paidTotal     float64
	active        bool
	cart          CartService
	notifications NotificationService
	cfg           CheckoutConfig
	onComplete    func() // 完成后（延迟 ReturnDelay）触发的返回动作
	logger        *zap.Logger
}

// NewCheckoutService 创建结算服务实例
// onComplete 在支付完成并等待 ReturnDelay 后被调用，可为nil
func NewCheckoutService(cart CartService, notifications NotificationService, cfg CheckoutConfig, onComplete func(), logger *zap.Logger) CheckoutService {
	return &checkoutService{
		cart:          cart,
		notifications: notifications,
		cfg:           cfg,
		onComplete:    onComplete,
		logger:        logger,
	}
}

// Start 开启新的结算会话
func (s *checkoutService) Start() (*CheckoutSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active && s.state == CheckoutStateSubmitting {
		return nil, ErrSubmitInFlight
	}
	if s.cart.TotalItems() == 0 {
		return nil, ErrCartEmpty
	}

	s.active = true
	s.state = CheckoutStateShipping
	s.form = domain.CheckoutForm{}
	s.fieldErrors = nil
	s.orderNumber = ""
	s.paidTotal = 0

	return s.snapshotLocked(), nil
}

// Snapshot 返回当前会话状态
func (s *checkoutService) Snapshot() (*CheckoutSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, ErrNoCheckoutSession
	}
	return s.snapshotLocked(), nil
}

// SetField 设置表单字段
func (s *checkoutService) SetField(name, value string) (*CheckoutSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, ErrNoCheckoutSession
	}
	switch s.state {
	case CheckoutStateSubmitting:
		return nil, ErrSubmitInFlight
	case CheckoutStateComplete:
		return nil, ErrCheckoutComplete
	}

	if !s.form.SetField(name, value) {
		return nil, ErrValidationFailed
	}
	// 修改字段即清除该字段的历史错误
	delete(s.fieldErrors, name)

	return s.snapshotLocked(), nil
}

// Next 校验当前步骤并前进
func (s *checkoutService) Next() (*CheckoutSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, ErrNoCheckoutSession
	}

	switch s.state {
	case CheckoutStateShipping:
		if errs := s.form.ValidateShipping(); len(errs) > 0 {
			s.fieldErrors = errs
			return s.snapshotLocked(), ErrValidationFailed
		}
		s.fieldErrors = nil
		s.state = CheckoutStatePayment
	case CheckoutStatePayment:
		if errs := s.form.ValidatePayment(); len(errs) > 0 {
			s.fieldErrors = errs
			return s.snapshotLocked(), ErrValidationFailed
		}
		s.fieldErrors = nil
		s.state = CheckoutStateReview
	case CheckoutStateReview:
		return nil, ErrNotReviewStep
	case CheckoutStateSubmitting:
		return nil, ErrSubmitInFlight
	case CheckoutStateComplete:
		return nil, ErrCheckoutComplete
	}

	return s.snapshotLocked(), nil
}

// Back 无条件后退一步
func (s *checkoutService) Back() (*CheckoutSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, ErrNoCheckoutSession
	}

	switch s.state {
	case CheckoutStatePayment:
		s.state = CheckoutStateShipping
	case CheckoutStateReview:
		s.state = CheckoutStatePayment
	case CheckoutStateSubmitting:
		return nil, ErrSubmitInFlight
	case CheckoutStateComplete:
		return nil, ErrCheckoutComplete
	}

	return s.snapshotLocked(), nil
}

// Submit 从第三步发起模拟支付
func (s *checkoutService) Submit() (*CheckoutSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, ErrNoCheckoutSession
	}
	switch s.state {
	case CheckoutStateSubmitting:
		return nil, ErrSubmitInFlight
	case CheckoutStateComplete:
		return nil, ErrCheckoutComplete
	}
	if s.state != CheckoutStateReview {
		return nil, ErrNotReviewStep
	}

	s.state = CheckoutStateSubmitting
	go s.settle()

	return s.snapshotLocked(), nil
}

// settle 模拟支付结算：固定耗时后恰好一次地完成收尾
// 结算不可取消，不关联任何请求上下文
func (s *checkoutService) settle() {
	time.Sleep(s.cfg.SettleDelay)

	s.mu.Lock()
	if s.state != CheckoutStateSubmitting {
		s.mu.Unlock()
		return
	}

	s.paidTotal = s.cart.TotalPrice()
	s.orderNumber = orderNumber()
	s.state = CheckoutStateComplete
	number, total := s.orderNumber, s.paidTotal
	s.mu.Unlock()

	s.cart.ClearCart()
	s.notifications.Push("¡Pago procesado exitosamente! 🎉", NotificationSuccess)
	s.logger.Info("payment settled",
		zap.String("order_number", number),
		zap.Float64("paid_total", total),
	)

	if s.onComplete != nil {
		time.AfterFunc(s.cfg.ReturnDelay, s.onComplete)
	}
}

// snapshotLocked 在持锁状态下构造状态快照
func (s *checkoutService) snapshotLocked() *CheckoutSnapshot {
	snap := &CheckoutSnapshot{
		State:       s.state,
		Step:        s.state.step(),
		Form:        s.form,
		OrderNumber: s.orderNumber,
		PaidTotal:   s.paidTotal,
	}
	if len(s.fieldErrors) > 0 {
		snap.Errors = make(map[string]string, len(s.fieldErrors))
		for k, v := range s.fieldErrors {
			snap.Errors[k] = v
		}
	}
	return snap
}

// orderNumber 生成订单号：取UUID的前两段并大写
func orderNumber() string {
	id := uuid.New().String()
	return "#" + strings.ToUpper(strings.ReplaceAll(id[:13], "-", ""))
}
