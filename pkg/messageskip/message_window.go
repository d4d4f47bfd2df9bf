package messageskip

import (
	"github.com/gonewx/messageskip/pkg/window"
)

// InputAdvancer 推进输入设备的一帧
// 自动确认翻页等待后调用，避免同一次按键再被当作确认输入
type InputAdvancer interface {
	Update()
}

// messageBehavior 文章显示窗口的跳过包装
type messageBehavior struct {
	next    window.MessageBehavior
	skipper *Skipper
	input   InputAdvancer
}

// WrapMessageWindow 为文章显示窗口安装跳过行为
func WrapMessageWindow(w *window.MessageWindow, skipper *Skipper, in InputAdvancer) {
	w.SetBehavior(&messageBehavior{
		next:    w.Behavior(),
		skipper: skipper,
		input:   in,
	})
}

// UpdateShowFast 跳过时立即显示整行并跳过文末等待
func (b *messageBehavior) UpdateShowFast(w *window.MessageWindow) {
	b.next.UpdateShowFast(w)
	if b.skipper.IsMessageSkip() {
		w.SetShowFast(true)
		w.SetLineShowFast(true)
		w.SetPauseSkip(true)
	}
}

// UpdateInput 跳过时自动解除翻页等待，文本已全部显示则直接结束消息
func (b *messageBehavior) UpdateInput(w *window.MessageWindow) bool {
	handled := b.next.UpdateInput(w)
	if w.IsPaused() && b.skipper.IsMessageSkip() {
		b.input.Update()
		w.SetPause(false)
		if !w.HasTextState() {
			w.TerminateMessage()
		}
		return true
	}
	return handled
}
