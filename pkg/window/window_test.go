package window

import "testing"

// fakeInput 可控的输入实现
// repeated 中的键名在 Update() 后被消耗
type fakeInput struct {
	pressed       map[string]bool
	repeated      map[string]bool
	longPressed   map[string]bool
	pointer       bool
	pointerRepeat bool
	pointerLong   bool
	updateCalls   int
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed:     make(map[string]bool),
		repeated:    make(map[string]bool),
		longPressed: make(map[string]bool),
	}
}

func (f *fakeInput) IsPressed(name string) bool        { return f.pressed[name] }
func (f *fakeInput) IsRepeated(name string) bool       { return f.repeated[name] }
func (f *fakeInput) IsKeyLongPressed(name string) bool { return f.longPressed[name] }
func (f *fakeInput) IsPointerPressed() bool            { return f.pointer }
func (f *fakeInput) IsPointerRepeated() bool           { return f.pointerRepeat }
func (f *fakeInput) IsPointerLongPressed() bool        { return f.pointerLong }

func (f *fakeInput) Update() {
	f.updateCalls++
	for name := range f.repeated {
		delete(f.repeated, name)
	}
	f.pointerRepeat = false
}

// TestGameMessageQueue 测试消息队列的基本操作
func TestGameMessageQueue(t *testing.T) {
	m := NewGameMessage()
	if m.HasText() || m.ScrollMode() {
		t.Fatal("new queue should be empty")
	}

	m.Add("hello")
	m.AddScroll("credits", 0, true)

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if m.ScrollMode() {
		t.Error("ScrollMode() = true for a normal message at the front")
	}
	if m.ScrollNoFast() {
		t.Error("ScrollNoFast() = true for a normal message")
	}

	m.Clear()
	if !m.ScrollMode() {
		t.Error("ScrollMode() = false for a scroll message at the front")
	}
	if m.ScrollSpeed() != DefaultScrollSpeed {
		t.Errorf("ScrollSpeed() = %d, want default %d", m.ScrollSpeed(), DefaultScrollSpeed)
	}
	if !m.ScrollNoFast() {
		t.Error("ScrollNoFast() = false, want true")
	}

	m.Clear()
	m.Clear()
	if m.HasText() {
		t.Error("queue not empty after clearing everything")
	}
}
