package messageskip

import (
	"github.com/gonewx/messageskip/pkg/window"
)

// scrollTextBehavior 滚动文章窗口的跳过包装
type scrollTextBehavior struct {
	next      window.ScrollTextBehavior
	skipper   *Skipper
	speedRate int
}

// WrapScrollTextWindow 为滚动文章窗口安装跳过行为
func WrapScrollTextWindow(w *window.ScrollTextWindow, skipper *Skipper, speedRate int) {
	w.SetBehavior(&scrollTextBehavior{
		next:      w.Behavior(),
		skipper:   skipper,
		speedRate: speedRate,
	})
}

// IsFastForward 作者禁止快进时始终为 false，否则原判定或跳过任一成立即快进
func (b *scrollTextBehavior) IsFastForward(w *window.ScrollTextWindow) bool {
	fastForward := b.next.IsFastForward(w)
	if w.Message().ScrollNoFast() {
		return false
	}
	return fastForward || b.skipper.IsMessageSkip()
}

// ScrollSpeed 快进且跳过时速度为 作者速度/2 × 倍率，否则沿用原公式
func (b *scrollTextBehavior) ScrollSpeed(w *window.ScrollTextWindow) float64 {
	if w.IsFastForward() && b.skipper.IsMessageSkip() {
		speed := float64(w.Message().ScrollSpeed()) / 2
		return speed * float64(b.speedRate)
	}
	return b.next.ScrollSpeed(w)
}
