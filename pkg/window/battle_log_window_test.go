package window

import (
	"fmt"
	"testing"

	"github.com/gonewx/messageskip/pkg/input"
)

// framesUntilSecondLine 统计第二行出现前经过的帧数
func framesUntilSecondLine(t *testing.T, w *BattleLogWindow) int {
	t.Helper()
	w.Push("first")
	w.Push("second")

	w.Update()
	if len(w.Lines()) != 1 {
		t.Fatalf("Lines() = %v, want first line shown", w.Lines())
	}

	frames := 0
	for len(w.Lines()) < 2 {
		w.Update()
		frames++
		if frames > 1000 {
			t.Fatal("second line never shown")
		}
	}
	return frames
}

// TestBattleLogWindowDefaultSpeed 测试默认每行等待 16 帧
func TestBattleLogWindowDefaultSpeed(t *testing.T) {
	w := NewBattleLogWindow(newFakeInput())

	if w.MessageSpeed() != defaultBattleLogSpeed {
		t.Errorf("MessageSpeed() = %d, want %d", w.MessageSpeed(), defaultBattleLogSpeed)
	}
	if got := framesUntilSecondLine(t, w); got != defaultBattleLogSpeed+1 {
		t.Errorf("second line after %d frames, want %d", got, defaultBattleLogSpeed+1)
	}
}

// TestBattleLogWindowFastForward 测试按住 Shift 时等待按 3 帧递减
func TestBattleLogWindowFastForward(t *testing.T) {
	in := newFakeInput()
	in.pressed[input.KeyShift] = true
	w := NewBattleLogWindow(in)

	// 16 → 13 → 10 → 7 → 4 → 1 → 0，共 6 帧等待 + 1 帧显示
	if got := framesUntilSecondLine(t, w); got != 7 {
		t.Errorf("second line after %d frames, want 7", got)
	}
}

// TestBattleLogWindowMaxLines 测试显示行数上限
func TestBattleLogWindowMaxLines(t *testing.T) {
	w := NewBattleLogWindow(newFakeInput())
	w.SetBehavior(fixedSpeed(0))

	for i := 0; i < maxBattleLogLines+3; i++ {
		w.Push(fmt.Sprintf("line %d", i))
	}
	for w.IsBusy() {
		w.Update()
	}

	lines := w.Lines()
	if len(lines) != maxBattleLogLines {
		t.Fatalf("len(Lines()) = %d, want %d", len(lines), maxBattleLogLines)
	}
	if lines[0] != "line 3" {
		t.Errorf("oldest line = %q, want %q", lines[0], "line 3")
	}

	w.Clear()
	if len(w.Lines()) != 0 || w.IsBusy() {
		t.Error("Clear() did not reset the log")
	}
}

// fixedSpeed 固定速度的行为
type fixedSpeed int

func (s fixedSpeed) MessageSpeed(w *BattleLogWindow) int { return int(s) }
