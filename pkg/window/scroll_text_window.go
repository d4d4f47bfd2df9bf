package window

import (
	"log"
	"strings"

	"github.com/gonewx/messageskip/pkg/input"
)

// fastForwardRate 原始快进倍率
const fastForwardRate = 3

// ScrollTextBehavior 滚动文章窗口中可被插件包装的行为
type ScrollTextBehavior interface {
	// IsFastForward 当前是否快进
	IsFastForward(w *ScrollTextWindow) bool
	// ScrollSpeed 本帧滚动的像素数
	ScrollSpeed(w *ScrollTextWindow) float64
}

type defaultScrollTextBehavior struct{}

// DefaultScrollTextBehavior 返回滚动文章窗口的原始行为
func DefaultScrollTextBehavior() ScrollTextBehavior {
	return defaultScrollTextBehavior{}
}

// IsFastForward 禁止快进时为 false，否则按住确认键、Shift 或指针时快进
func (defaultScrollTextBehavior) IsFastForward(w *ScrollTextWindow) bool {
	if w.message.ScrollNoFast() {
		return false
	}
	return w.input.IsPressed(input.KeyOK) ||
		w.input.IsPressed(input.KeyShift) ||
		w.input.IsPointerPressed()
}

// ScrollSpeed 作者设定速度的一半，快进时乘以快进倍率
// 通过 w.IsFastForward() 调用，使包装后的快进判定同样生效
func (defaultScrollTextBehavior) ScrollSpeed(w *ScrollTextWindow) float64 {
	speed := float64(w.message.ScrollSpeed()) / 2
	if w.IsFastForward() {
		speed *= fastForwardRate
	}
	return speed
}

// ScrollTextWindow 滚动文章窗口
//
// 文本从窗口底部开始向上滚动，全部滚出窗口顶部后结束消息。
type ScrollTextWindow struct {
	message  *GameMessage
	input    Input
	behavior ScrollTextBehavior

	// LineHeight 每行高度（像素）
	LineHeight float64
	// Height 窗口可见高度（像素）
	Height float64

	text          string
	active        bool
	originY       float64
	allTextHeight float64

	finishedCount int
}

// NewScrollTextWindow 创建滚动文章窗口
func NewScrollTextWindow(message *GameMessage, in Input, height, lineHeight float64) *ScrollTextWindow {
	return &ScrollTextWindow{
		message:    message,
		input:      in,
		behavior:   DefaultScrollTextBehavior(),
		LineHeight: lineHeight,
		Height:     height,
	}
}

// Behavior 返回当前行为
func (w *ScrollTextWindow) Behavior() ScrollTextBehavior {
	return w.behavior
}

// SetBehavior 替换当前行为
func (w *ScrollTextWindow) SetBehavior(b ScrollTextBehavior) {
	w.behavior = b
}

// Message 返回窗口使用的消息队列（插件读取禁止快进标志和作者速度）
func (w *ScrollTextWindow) Message() *GameMessage {
	return w.message
}

// IsFastForward 通过当前行为判定是否快进
func (w *ScrollTextWindow) IsFastForward() bool {
	return w.behavior.IsFastForward(w)
}

// ScrollSpeed 通过当前行为计算滚动速度
func (w *ScrollTextWindow) ScrollSpeed() float64 {
	return w.behavior.ScrollSpeed(w)
}

// Update 每帧更新
func (w *ScrollTextWindow) Update() {
	if !w.message.ScrollMode() {
		return
	}
	if !w.active {
		w.startMessage()
	}
	w.updateMessage()
}

func (w *ScrollTextWindow) startMessage() {
	msg, _ := w.message.Current()
	w.text = msg.Text
	lines := strings.Count(msg.Text, "\n") + 1
	w.allTextHeight = float64(lines) * w.LineHeight
	w.originY = -w.Height
	w.active = true
	log.Printf("[ScrollTextWindow] Start scroll text: %d lines, speed=%d, noFast=%v",
		lines, msg.ScrollSpeed, msg.ScrollNoFast)
}

func (w *ScrollTextWindow) updateMessage() {
	w.originY += w.ScrollSpeed()
	if w.originY >= w.allTextHeight {
		w.terminateMessage()
	}
}

func (w *ScrollTextWindow) terminateMessage() {
	w.text = ""
	w.active = false
	w.message.Clear()
	w.finishedCount++
	log.Printf("[ScrollTextWindow] Scroll text finished (total %d)", w.finishedCount)
}

// IsActive 是否正在滚动
func (w *ScrollTextWindow) IsActive() bool { return w.active }

// Text 正在滚动的文本
func (w *ScrollTextWindow) Text() string { return w.text }

// OriginY 当前滚动偏移（负值表示文本尚在窗口底部以下）
func (w *ScrollTextWindow) OriginY() float64 { return w.originY }

// FinishedCount 已结束的滚动文章数量
func (w *ScrollTextWindow) FinishedCount() int { return w.finishedCount }
