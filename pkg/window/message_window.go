package window

import (
	"log"

	"github.com/gonewx/messageskip/pkg/input"
)

// 等待帧数
const (
	// pauseWaitFrames 进入翻页等待前的缓冲帧数
	pauseWaitFrames = 10
	// shortWaitFrames 控制字符 \. 的等待帧数
	shortWaitFrames = 15
	// longWaitFrames 控制字符 \| 的等待帧数
	longWaitFrames = 60
)

// MessageBehavior 文章显示窗口中可被插件包装的行为
type MessageBehavior interface {
	// UpdateShowFast 在显示每个字符之前调用，决定是否立即显示剩余文字
	UpdateShowFast(w *MessageWindow)
	// UpdateInput 处理等待输入状态
	// 返回 true 表示本帧输入已处理，窗口本帧不再继续更新
	UpdateInput(w *MessageWindow) bool
}

// defaultMessageBehavior 窗口的原始行为
type defaultMessageBehavior struct{}

// DefaultMessageBehavior 返回文章显示窗口的原始行为
func DefaultMessageBehavior() MessageBehavior {
	return defaultMessageBehavior{}
}

// UpdateShowFast 确认/取消键或指针触发时立即显示
func (defaultMessageBehavior) UpdateShowFast(w *MessageWindow) {
	if w.isTriggered() {
		w.showFast = true
	}
}

// UpdateInput 翻页等待中按下确认/取消键或指针时解除等待
func (defaultMessageBehavior) UpdateInput(w *MessageWindow) bool {
	if !w.pause {
		return false
	}
	if w.isTriggered() {
		w.input.Update()
		w.pause = false
		if w.textState == nil {
			w.TerminateMessage()
		}
	}
	return true
}

// TextState 正在显示的文本的进度
type TextState struct {
	text  []rune
	index int
	shown []rune
}

func newTextState(text string) *TextState {
	return &TextState{text: []rune(text)}
}

func (ts *TextState) isEnd() bool {
	return ts.index >= len(ts.text)
}

// MessageWindow 文章显示窗口
//
// 每帧从消息队列取出普通消息逐字显示，支持以下控制字符：
//   - \.  等待 15 帧
//   - \|  等待 60 帧
//   - \!  暂停等待输入
//   - \>  本行剩余文字立即显示
//   - \<  取消本行立即显示
//   - \^  文末不等待输入
//   - \\  反斜杠本身
//
// 换行会取消本行立即显示。
type MessageWindow struct {
	message  *GameMessage
	input    Input
	behavior MessageBehavior

	textState    *TextState
	shownText    string // 最近一条消息已显示的文字（消息结束后仍保留，用于翻页等待时渲染）
	showFast     bool
	lineShowFast bool
	pauseSkip    bool
	pause        bool
	waitCount    int
	open         bool

	terminatedCount int
}

// NewMessageWindow 创建文章显示窗口
func NewMessageWindow(message *GameMessage, in Input) *MessageWindow {
	return &MessageWindow{
		message:  message,
		input:    in,
		behavior: DefaultMessageBehavior(),
	}
}

// Behavior 返回当前行为
func (w *MessageWindow) Behavior() MessageBehavior {
	return w.behavior
}

// SetBehavior 替换当前行为，通常传入包装了 Behavior() 的新实现
func (w *MessageWindow) SetBehavior(b MessageBehavior) {
	w.behavior = b
}

// Update 每帧更新
func (w *MessageWindow) Update() {
	for {
		if w.updateWait() {
			return
		}
		if w.behavior.UpdateInput(w) {
			return
		}
		if w.updateMessage() {
			return
		}
		if !w.canStart() {
			return
		}
		w.startMessage()
	}
}

// updateWait 消耗等待帧
func (w *MessageWindow) updateWait() bool {
	if w.waitCount > 0 {
		w.waitCount--
		return true
	}
	return false
}

// updateMessage 推进文字显示，没有正在显示的文本时返回 false
func (w *MessageWindow) updateMessage() bool {
	ts := w.textState
	if ts == nil {
		return false
	}

	for !ts.isEnd() {
		w.behavior.UpdateShowFast(w)
		w.processCharacter(ts)
		if w.shouldBreakHere() {
			break
		}
	}
	w.shownText = string(ts.shown)

	if ts.isEnd() && !w.isWaiting() {
		w.onEndOfText()
	}
	return true
}

func (w *MessageWindow) shouldBreakHere() bool {
	if !w.showFast && !w.lineShowFast {
		return true
	}
	return w.isWaiting()
}

func (w *MessageWindow) isWaiting() bool {
	return w.pause || w.waitCount > 0
}

// processCharacter 处理一个字符或一个控制字符
func (w *MessageWindow) processCharacter(ts *TextState) {
	c := ts.text[ts.index]
	if c == '\\' && ts.index+1 < len(ts.text) {
		ts.index += 2
		switch code := ts.text[ts.index-1]; code {
		case '.':
			w.waitCount = shortWaitFrames
		case '|':
			w.waitCount = longWaitFrames
		case '!':
			w.startPause()
		case '>':
			w.lineShowFast = true
		case '<':
			w.lineShowFast = false
		case '^':
			w.pauseSkip = true
		case '\\':
			ts.shown = append(ts.shown, '\\')
		default:
			// 未知控制字符按原样显示
			ts.shown = append(ts.shown, '\\', code)
		}
		return
	}

	ts.index++
	ts.shown = append(ts.shown, c)
	if c == '\n' {
		w.lineShowFast = false
	}
}

func (w *MessageWindow) onEndOfText() {
	if !w.pauseSkip {
		w.startPause()
	} else {
		w.TerminateMessage()
	}
	w.textState = nil
}

func (w *MessageWindow) startPause() {
	w.waitCount = pauseWaitFrames
	w.pause = true
}

func (w *MessageWindow) canStart() bool {
	return w.textState == nil && !w.pause &&
		w.message.HasText() && !w.message.ScrollMode()
}

func (w *MessageWindow) startMessage() {
	msg, _ := w.message.Current()
	w.textState = newTextState(msg.Text)
	w.shownText = ""
	w.clearFlags()
	w.open = true
	log.Printf("[MessageWindow] Start message (%d chars)", len(w.textState.text))
}

func (w *MessageWindow) clearFlags() {
	w.showFast = false
	w.lineShowFast = false
	w.pauseSkip = false
}

// isTriggered 确认/取消键或指针是否触发（含按住重复）
func (w *MessageWindow) isTriggered() bool {
	return w.input.IsRepeated(input.KeyOK) ||
		w.input.IsRepeated(input.KeyEscape) ||
		w.input.IsPointerRepeated()
}

// TerminateMessage 结束当前消息：关闭窗口并从队列弹出
func (w *MessageWindow) TerminateMessage() {
	w.open = false
	w.message.Clear()
	w.terminatedCount++
	log.Printf("[MessageWindow] Message terminated (total %d)", w.terminatedCount)
}

// ShowFast 当前是否立即显示
func (w *MessageWindow) ShowFast() bool { return w.showFast }

// SetShowFast 设置立即显示
func (w *MessageWindow) SetShowFast(v bool) { w.showFast = v }

// LineShowFast 本行是否立即显示
func (w *MessageWindow) LineShowFast() bool { return w.lineShowFast }

// SetLineShowFast 设置本行立即显示
func (w *MessageWindow) SetLineShowFast(v bool) { w.lineShowFast = v }

// PauseSkip 文末是否跳过等待输入
func (w *MessageWindow) PauseSkip() bool { return w.pauseSkip }

// SetPauseSkip 设置文末跳过等待输入
func (w *MessageWindow) SetPauseSkip(v bool) { w.pauseSkip = v }

// IsPaused 是否正在等待输入
func (w *MessageWindow) IsPaused() bool { return w.pause }

// SetPause 设置等待输入状态
func (w *MessageWindow) SetPause(v bool) { w.pause = v }

// HasTextState 是否有文本正在显示中（尚未到达文末）
func (w *MessageWindow) HasTextState() bool { return w.textState != nil }

// IsOpen 窗口是否打开
func (w *MessageWindow) IsOpen() bool { return w.open }

// VisibleText 当前已显示的文字
func (w *MessageWindow) VisibleText() string { return w.shownText }

// TerminatedCount 已结束的消息数量
func (w *MessageWindow) TerminatedCount() int { return w.terminatedCount }
