package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// KeyRepeatWait 按住多少帧后开始重复触发，也是长按的判定阈值
	KeyRepeatWait = 24
	// KeyRepeatInterval 开始重复后每隔多少帧触发一次
	KeyRepeatInterval = 6
)

// Source 物理输入源
// 生产环境使用 EbitenSource，测试中替换为可控的假实现
type Source interface {
	// IsKeyPressed 键盘按键当前是否按下
	IsKeyPressed(key ebiten.Key) bool
	// IsGamepadButtonPressed 任一标准布局手柄的按钮当前是否按下
	IsGamepadButtonPressed(button ebiten.StandardGamepadButton) bool
	// IsPointerPressed 鼠标左键或任一触摸点当前是否按下
	IsPointerPressed() bool
}

// EbitenSource 基于 ebiten 轮询的输入源
type EbitenSource struct{}

// IsKeyPressed 实现 Source
func (EbitenSource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// IsGamepadButtonPressed 实现 Source
// 只检查提供标准布局的手柄
func (EbitenSource) IsGamepadButtonPressed(button ebiten.StandardGamepadButton) bool {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if ebiten.IsStandardGamepadButtonPressed(id, button) {
			return true
		}
	}
	return false
}

// IsPointerPressed 实现 Source
// 优先检测触摸，其次检测鼠标左键
func (EbitenSource) IsPointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	// 同一帧内按下又抬起的触摸不会出现在 AppendTouchIDs 中
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Device 按键名聚合的输入设备
//
// 每帧调用一次 Update() 采样物理输入并推进边沿检测状态。
// 触发/重复/长按基于"最后按下的键"模型：只有最近一次新按下的键名会产生触发和重复，
// 同时按住的其他键只报告按下状态。
//
// 同一帧内再次调用 Update() 会消耗掉本帧的触发边沿，
// 用于在处理完一次确认输入后避免同一次按键被其他逻辑再次识别。
type Device struct {
	source Source

	currentState  map[string]bool
	previousState map[string]bool
	latestButton  string
	pressedTime   int

	pointerPressed     bool
	pointerTriggered   bool
	pointerPressedTime int
}

// NewDevice 创建输入设备
// source 为 nil 时使用 EbitenSource
func NewDevice(source Source) *Device {
	if source == nil {
		source = EbitenSource{}
	}
	return &Device{
		source:        source,
		currentState:  make(map[string]bool),
		previousState: make(map[string]bool),
	}
}

// Update 采样物理输入并推进一帧
func (d *Device) Update() {
	d.previousState, d.currentState = d.currentState, d.previousState
	for name := range d.currentState {
		delete(d.currentState, name)
	}

	for key, name := range KeyMapper {
		if d.source.IsKeyPressed(key) {
			d.currentState[name] = true
		}
	}
	for button, name := range GamepadMapper {
		if d.source.IsGamepadButtonPressed(button) {
			d.currentState[name] = true
		}
	}

	d.updateLatestButton()
	d.updatePointer()
}

// updateLatestButton 更新最后按下的键及其持续帧数
func (d *Device) updateLatestButton() {
	if d.latestButton != "" && d.currentState[d.latestButton] {
		d.pressedTime++
	} else {
		d.latestButton = ""
	}

	// 同一帧多个键同时按下时取字典序最小者，保证结果确定
	newest := ""
	for name, pressed := range d.currentState {
		if pressed && !d.previousState[name] && (newest == "" || name < newest) {
			newest = name
		}
	}
	if newest != "" {
		d.latestButton = newest
		d.pressedTime = 0
	}
}

// updatePointer 更新指针（鼠标/触摸）状态
func (d *Device) updatePointer() {
	pressed := d.source.IsPointerPressed()
	d.pointerTriggered = pressed && !d.pointerPressed
	switch {
	case d.pointerTriggered:
		d.pointerPressedTime = 0
	case pressed:
		d.pointerPressedTime++
	default:
		d.pointerPressedTime = 0
	}
	d.pointerPressed = pressed
}

// IsPressed 键名当前是否按下
func (d *Device) IsPressed(name string) bool {
	return d.currentState[name]
}

// IsTriggered 键名是否在本帧刚刚按下
func (d *Device) IsTriggered(name string) bool {
	return d.latestButton == name && d.pressedTime == 0
}

// IsRepeated 键名是否刚刚按下，或按住超过等待帧数后到达重复间隔
func (d *Device) IsRepeated(name string) bool {
	if d.latestButton != name {
		return false
	}
	return d.pressedTime == 0 ||
		(d.pressedTime >= KeyRepeatWait && d.pressedTime%KeyRepeatInterval == 0)
}

// IsKeyLongPressed 键名是否已按住超过长按阈值
func (d *Device) IsKeyLongPressed(name string) bool {
	return d.latestButton == name && d.pressedTime >= KeyRepeatWait
}

// IsPointerPressed 指针当前是否按下
func (d *Device) IsPointerPressed() bool {
	return d.pointerPressed
}

// IsPointerTriggered 指针是否在本帧刚刚按下
func (d *Device) IsPointerTriggered() bool {
	return d.pointerTriggered
}

// IsPointerRepeated 指针是否刚刚按下，或按住超过等待帧数后到达重复间隔
func (d *Device) IsPointerRepeated() bool {
	if !d.pointerPressed {
		return false
	}
	return d.pointerTriggered ||
		(d.pointerPressedTime >= KeyRepeatWait && d.pointerPressedTime%KeyRepeatInterval == 0)
}

// IsPointerLongPressed 指针是否已按住超过长按阈值（长按/长触摸）
func (d *Device) IsPointerLongPressed() bool {
	return d.pointerPressed && d.pointerPressedTime >= KeyRepeatWait
}

// Clear 清除所有状态，用于场景切换
func (d *Device) Clear() {
	for name := range d.currentState {
		delete(d.currentState, name)
	}
	for name := range d.previousState {
		delete(d.previousState, name)
	}
	d.latestButton = ""
	d.pressedTime = 0
	d.pointerPressed = false
	d.pointerTriggered = false
	d.pointerPressedTime = 0
}
