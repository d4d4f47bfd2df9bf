// Package input 提供按键名抽象的输入设备
//
// 键盘、标准手柄按钮和鼠标/触摸统一映射为少量虚拟键名（ok、shift、control 等），
// 上层逻辑只通过键名查询按下、触发、长按状态。
package input

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// 虚拟键名
const (
	KeyTab      = "tab"
	KeyOK       = "ok"
	KeyShift    = "shift"
	KeyControl  = "control"
	KeyEscape   = "escape"
	KeyPageUp   = "pageup"
	KeyPageDown = "pagedown"
	KeyLeft     = "left"
	KeyUp       = "up"
	KeyRight    = "right"
	KeyDown     = "down"
	KeyDebug    = "debug"
)

// KeyMapper 键盘按键到虚拟键名的映射
// 多个物理按键可以映射到同一个键名（如 Enter/Space/Z 都是 ok）
var KeyMapper = map[ebiten.Key]string{
	ebiten.KeyTab:         KeyTab,
	ebiten.KeyEnter:       KeyOK,
	ebiten.KeyNumpadEnter: KeyOK,
	ebiten.KeyShift:       KeyShift,
	ebiten.KeyControl:     KeyControl,
	ebiten.KeyAlt:         KeyControl,
	ebiten.KeyEscape:      KeyEscape,
	ebiten.KeySpace:       KeyOK,
	ebiten.KeyPageUp:      KeyPageUp,
	ebiten.KeyPageDown:    KeyPageDown,
	ebiten.KeyArrowLeft:   KeyLeft,
	ebiten.KeyArrowUp:     KeyUp,
	ebiten.KeyArrowRight:  KeyRight,
	ebiten.KeyArrowDown:   KeyDown,
	ebiten.KeyInsert:      KeyEscape,
	ebiten.KeyQ:           KeyPageUp,
	ebiten.KeyW:           KeyPageDown,
	ebiten.KeyX:           KeyEscape,
	ebiten.KeyZ:           KeyOK,
	ebiten.KeyNumpad0:     KeyEscape,
	ebiten.KeyNumpad2:     KeyDown,
	ebiten.KeyNumpad4:     KeyLeft,
	ebiten.KeyNumpad6:     KeyRight,
	ebiten.KeyNumpad8:     KeyUp,
	ebiten.KeyF9:          KeyDebug,
}

// GamepadMapper 标准布局手柄按钮到虚拟键名的映射
var GamepadMapper = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom:   KeyOK,       // A
	ebiten.StandardGamepadButtonRightRight:    KeyEscape,   // B
	ebiten.StandardGamepadButtonRightLeft:     KeyShift,    // X
	ebiten.StandardGamepadButtonFrontTopLeft:  KeyPageUp,   // LB
	ebiten.StandardGamepadButtonFrontTopRight: KeyPageDown, // RB
	ebiten.StandardGamepadButtonLeftTop:       KeyUp,
	ebiten.StandardGamepadButtonLeftBottom:    KeyDown,
	ebiten.StandardGamepadButtonLeftLeft:      KeyLeft,
	ebiten.StandardGamepadButtonLeftRight:     KeyRight,
}

// Vocabulary 返回键盘映射中出现的全部键名（去重、排序）
// 插件参数中分配的键名必须属于该集合
func Vocabulary() []string {
	seen := make(map[string]struct{}, len(KeyMapper))
	names := make([]string, 0, len(KeyMapper))
	for _, name := range KeyMapper {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
