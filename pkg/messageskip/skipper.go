// Package messageskip 实现按住指定键（或长按/长触摸）时加速消息显示的插件
//
// 插件本身只有一个判定函数 IsMessageSkip 和三组窗口行为包装：
//   - 文章显示：立即显示整页，并自动跳过"按键继续"的翻页等待
//   - 滚动文章：未禁止快进时强制快进，速度为 作者速度/2 × 倍率
//   - 战斗日志：等待帧数替换为配置值
//
// 所有包装都先调用被包装的原行为，再叠加跳过逻辑。
package messageskip

import (
	"github.com/gonewx/messageskip/pkg/config"
)

// InputState 跳过判定需要的输入查询
// *input.Device 满足此接口
type InputState interface {
	// IsPressed 键名当前是否按下
	IsPressed(name string) bool
	// IsPointerLongPressed 指针是否处于长按/长触摸状态
	IsPointerLongPressed() bool
}

// Skipper 跳过判定
// 不保存任何状态，每次调用都根据当前输入重新计算
type Skipper struct {
	keyNames      []string
	longPressSkip bool
	input         InputState
}

// NewSkipper 根据配置和输入状态创建跳过判定
func NewSkipper(cfg *config.MessageSkipConfig, in InputState) *Skipper {
	return &Skipper{
		keyNames:      cfg.KeyNames(),
		longPressSkip: cfg.LongPressSkip(),
		input:         in,
	}
}

// IsMessageSkip 当前是否处于跳过状态
// 先检查长按（仅在启用时），再按配置顺序检查各键，任一成立立即返回
func (s *Skipper) IsMessageSkip() bool {
	if s.longPressSkip && s.input.IsPointerLongPressed() {
		return true
	}
	for _, name := range s.keyNames {
		if s.input.IsPressed(name) {
			return true
		}
	}
	return false
}
