package messageskip

import (
	"github.com/gonewx/messageskip/pkg/window"
)

// battleLogBehavior 战斗日志窗口的跳过包装
type battleLogBehavior struct {
	next    window.BattleLogBehavior
	skipper *Skipper
	speed   int
}

// WrapBattleLogWindow 为战斗日志窗口安装跳过行为
func WrapBattleLogWindow(w *window.BattleLogWindow, skipper *Skipper, speed int) {
	w.SetBehavior(&battleLogBehavior{
		next:    w.Behavior(),
		skipper: skipper,
		speed:   speed,
	})
}

// MessageSpeed 跳过时返回配置的速度
func (b *battleLogBehavior) MessageSpeed(w *window.BattleLogWindow) int {
	if b.skipper.IsMessageSkip() {
		return b.speed
	}
	return b.next.MessageSpeed(w)
}
