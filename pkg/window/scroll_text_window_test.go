package window

import (
	"testing"

	"github.com/gonewx/messageskip/pkg/input"
)

// TestScrollTextWindowSpeed 测试原始滚动速度与快进
func TestScrollTextWindowSpeed(t *testing.T) {
	tests := []struct {
		name   string
		speed  int
		noFast bool
		hold   string
		want   float64
	}{
		{"normal", 4, false, "", 2},
		{"fast forward with ok", 4, false, input.KeyOK, 6},
		{"fast forward with shift", 2, false, input.KeyShift, 3},
		{"no fast ignores ok", 4, true, input.KeyOK, 2},
		{"control does not fast forward", 4, false, input.KeyControl, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewGameMessage()
			msg.AddScroll("line", tt.speed, tt.noFast)
			in := newFakeInput()
			if tt.hold != "" {
				in.pressed[tt.hold] = true
			}
			w := NewScrollTextWindow(msg, in, 100, 20)

			if got := w.ScrollSpeed(); got != tt.want {
				t.Errorf("ScrollSpeed() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestScrollTextWindowPointerFastForward 测试按住指针快进
func TestScrollTextWindowPointerFastForward(t *testing.T) {
	msg := NewGameMessage()
	msg.AddScroll("line", 2, false)
	in := newFakeInput()
	in.pointer = true
	w := NewScrollTextWindow(msg, in, 100, 20)

	if !w.IsFastForward() {
		t.Error("IsFastForward() = false while pointer held")
	}
}

// TestScrollTextWindowLifecycle 测试滚动文章从开始到结束
func TestScrollTextWindowLifecycle(t *testing.T) {
	msg := NewGameMessage()
	msg.AddScroll("a\nb", 20, false) // 每帧 10 像素
	msg.Add("after")
	w := NewScrollTextWindow(msg, newFakeInput(), 60, 20)

	w.Update()
	if !w.IsActive() {
		t.Fatal("scroll text did not start")
	}
	if got := w.OriginY(); got != -50 {
		t.Errorf("OriginY() = %v, want -50", got)
	}

	// 文本高度 40，从 -60 滚动到 40 共需 10 帧
	for i := 1; i < 9; i++ {
		w.Update()
		if !w.IsActive() {
			t.Fatalf("scroll text finished early at frame %d", i)
		}
	}
	w.Update()
	if w.IsActive() {
		t.Error("scroll text still active after scrolling past the end")
	}
	if w.FinishedCount() != 1 {
		t.Errorf("FinishedCount() = %d, want 1", w.FinishedCount())
	}
	if msg.ScrollMode() {
		t.Error("scroll message not cleared from the queue")
	}

	// 队首不是滚动文章时不做任何事
	w.Update()
	if w.IsActive() {
		t.Error("scroll window started a normal message")
	}
}
