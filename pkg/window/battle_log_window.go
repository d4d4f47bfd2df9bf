package window

import (
	"log"

	"github.com/gonewx/messageskip/pkg/input"
)

const (
	// defaultBattleLogSpeed 战斗日志每行的等待帧数
	defaultBattleLogSpeed = 16
	// battleLogFastForwardStep 快进时每帧减少的等待帧数
	battleLogFastForwardStep = 3
	// maxBattleLogLines 同时显示的最大行数
	maxBattleLogLines = 10
)

// BattleLogBehavior 战斗日志窗口中可被插件包装的行为
type BattleLogBehavior interface {
	// MessageSpeed 每行显示后的等待帧数，越小越快
	MessageSpeed(w *BattleLogWindow) int
}

type defaultBattleLogBehavior struct{}

// DefaultBattleLogBehavior 返回战斗日志窗口的原始行为
func DefaultBattleLogBehavior() BattleLogBehavior {
	return defaultBattleLogBehavior{}
}

// MessageSpeed 固定 16 帧
func (defaultBattleLogBehavior) MessageSpeed(w *BattleLogWindow) int {
	return defaultBattleLogSpeed
}

// BattleLogWindow 战斗日志窗口
type BattleLogWindow struct {
	input    Input
	behavior BattleLogBehavior

	pending   []string
	lines     []string
	waitCount int
}

// NewBattleLogWindow 创建战斗日志窗口
func NewBattleLogWindow(in Input) *BattleLogWindow {
	return &BattleLogWindow{
		input:    in,
		behavior: DefaultBattleLogBehavior(),
	}
}

// Behavior 返回当前行为
func (w *BattleLogWindow) Behavior() BattleLogBehavior {
	return w.behavior
}

// SetBehavior 替换当前行为
func (w *BattleLogWindow) SetBehavior(b BattleLogBehavior) {
	w.behavior = b
}

// MessageSpeed 通过当前行为取得等待帧数
func (w *BattleLogWindow) MessageSpeed() int {
	return w.behavior.MessageSpeed(w)
}

// Push 追加一行待显示的日志
func (w *BattleLogWindow) Push(line string) {
	w.pending = append(w.pending, line)
}

// Update 每帧更新：等待结束后显示下一行
func (w *BattleLogWindow) Update() {
	if w.updateWaitCount() {
		return
	}
	if len(w.pending) == 0 {
		return
	}
	line := w.pending[0]
	w.pending = w.pending[1:]
	w.addText(line)
}

func (w *BattleLogWindow) updateWaitCount() bool {
	if w.waitCount <= 0 {
		return false
	}
	if w.isFastForward() {
		w.waitCount -= battleLogFastForwardStep
	} else {
		w.waitCount--
	}
	if w.waitCount < 0 {
		w.waitCount = 0
	}
	return true
}

// isFastForward 长按确认键、按住 Shift 或长按指针时快进
func (w *BattleLogWindow) isFastForward() bool {
	return w.input.IsKeyLongPressed(input.KeyOK) ||
		w.input.IsPressed(input.KeyShift) ||
		w.input.IsPointerLongPressed()
}

func (w *BattleLogWindow) addText(line string) {
	w.lines = append(w.lines, line)
	if len(w.lines) > maxBattleLogLines {
		w.lines = w.lines[len(w.lines)-maxBattleLogLines:]
	}
	w.waitCount = w.MessageSpeed()
	log.Printf("[BattleLogWindow] %s (wait %d)", line, w.waitCount)
}

// Lines 当前显示的日志行
func (w *BattleLogWindow) Lines() []string {
	return w.lines
}

// IsBusy 是否仍有等待或未显示的日志
func (w *BattleLogWindow) IsBusy() bool {
	return w.waitCount > 0 || len(w.pending) > 0
}

// Clear 清空日志
func (w *BattleLogWindow) Clear() {
	w.pending = nil
	w.lines = nil
	w.waitCount = 0
}
