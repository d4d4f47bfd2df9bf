// Package window 实现消息显示相关的窗口：文章显示、滚动文章、战斗日志
//
// 每个窗口把可被插件改写的行为抽象为 Behavior 接口，
// 插件通过 SetBehavior 包装原有行为（先调用原行为，再叠加自己的逻辑），
// 窗口内部始终通过当前 Behavior 调用这些钩子。
package window

import "log"

// 滚动文章默认速度（与编辑器默认值一致）
const DefaultScrollSpeed = 2

// Input 窗口依赖的输入查询接口
// *input.Device 满足此接口
type Input interface {
	IsPressed(name string) bool
	IsRepeated(name string) bool
	IsKeyLongPressed(name string) bool
	IsPointerPressed() bool
	IsPointerRepeated() bool
	IsPointerLongPressed() bool
	// Update 推进输入设备的一帧（消耗本帧触发边沿）
	Update()
}

// Message 一条待显示的消息
type Message struct {
	// Text 消息文本，可以包含控制字符（见 MessageWindow）
	Text string
	// Scroll 是否为滚动文章
	Scroll bool
	// ScrollSpeed 滚动文章的作者设定速度
	ScrollSpeed int
	// ScrollNoFast 滚动文章是否禁止快进
	ScrollNoFast bool
}

// GameMessage 消息队列
// 消息窗口和滚动文章窗口都从队首取消息，结束时调用 Clear 弹出
type GameMessage struct {
	queue []Message
}

// NewGameMessage 创建空的消息队列
func NewGameMessage() *GameMessage {
	return &GameMessage{}
}

// Add 追加一条普通消息
func (m *GameMessage) Add(text string) {
	m.queue = append(m.queue, Message{Text: text})
}

// AddScroll 追加一条滚动文章
func (m *GameMessage) AddScroll(text string, speed int, noFast bool) {
	if speed <= 0 {
		speed = DefaultScrollSpeed
	}
	m.queue = append(m.queue, Message{
		Text:         text,
		Scroll:       true,
		ScrollSpeed:  speed,
		ScrollNoFast: noFast,
	})
}

// HasText 队列中是否有消息
func (m *GameMessage) HasText() bool {
	return len(m.queue) > 0
}

// Len 队列中的消息数量
func (m *GameMessage) Len() int {
	return len(m.queue)
}

// Current 返回队首消息
func (m *GameMessage) Current() (Message, bool) {
	if len(m.queue) == 0 {
		return Message{}, false
	}
	return m.queue[0], true
}

// ScrollMode 队首消息是否为滚动文章
func (m *GameMessage) ScrollMode() bool {
	msg, ok := m.Current()
	return ok && msg.Scroll
}

// ScrollSpeed 队首滚动文章的作者设定速度
func (m *GameMessage) ScrollSpeed() int {
	msg, ok := m.Current()
	if !ok || !msg.Scroll {
		return DefaultScrollSpeed
	}
	return msg.ScrollSpeed
}

// ScrollNoFast 队首滚动文章是否禁止快进
func (m *GameMessage) ScrollNoFast() bool {
	msg, ok := m.Current()
	return ok && msg.Scroll && msg.ScrollNoFast
}

// Clear 弹出队首消息
func (m *GameMessage) Clear() {
	if len(m.queue) == 0 {
		return
	}
	m.queue = m.queue[1:]
	log.Printf("[GameMessage] Message cleared, %d remaining", len(m.queue))
}
