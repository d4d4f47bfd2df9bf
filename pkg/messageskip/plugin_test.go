package messageskip

import (
	"errors"
	"testing"

	"github.com/gonewx/messageskip/pkg/config"
	"github.com/gonewx/messageskip/pkg/window"
)

// TestNewPlugin 测试插件初始化
func TestNewPlugin(t *testing.T) {
	dev := newFakeDevice()
	p, err := NewPlugin(config.DefaultMessageSkipParameters(), dev)
	if err != nil {
		t.Fatalf("NewPlugin() error = %v", err)
	}

	if p.Config().ScrollMessageSpeedRate() != 100 {
		t.Errorf("ScrollMessageSpeedRate() = %d, want 100", p.Config().ScrollMessageSpeedRate())
	}
	if p.IsMessageSkip() {
		t.Error("IsMessageSkip() = true with nothing held")
	}
	dev.pressed["control"] = true
	if !p.Skipper().IsMessageSkip() {
		t.Error("IsMessageSkip() = false with control held")
	}
}

// TestNewPluginInvalid 测试非法参数导致初始化失败
func TestNewPluginInvalid(t *testing.T) {
	params := config.DefaultMessageSkipParameters()
	params.AssignKeyCodes = `["control","menu"]`

	p, err := NewPlugin(params, newFakeDevice())
	if err == nil {
		t.Fatal("NewPlugin() error = nil, want error")
	}
	if p != nil {
		t.Error("NewPlugin() returned a plugin on error")
	}
	if !errors.Is(err, config.ErrInvalidParameter) {
		t.Errorf("error %v does not wrap ErrInvalidParameter", err)
	}
}

// TestPluginInstall 测试安装到全部窗口
func TestPluginInstall(t *testing.T) {
	dev := newFakeDevice()
	params := config.DefaultMessageSkipParameters()
	params.BattleLogMessageSpeed = "2"
	p, err := NewPlugin(params, dev)
	if err != nil {
		t.Fatalf("NewPlugin() error = %v", err)
	}

	msg := window.NewGameMessage()
	msg.AddScroll("text", 4, false)
	messageWindow := window.NewMessageWindow(msg, dev)
	scrollWindow := window.NewScrollTextWindow(msg, dev, 100, 20)
	battleLog := window.NewBattleLogWindow(dev)

	p.Install(messageWindow, scrollWindow, battleLog)

	dev.pressed["control"] = true
	if got := scrollWindow.ScrollSpeed(); got != 200 {
		t.Errorf("ScrollSpeed() = %v, want 200", got)
	}
	if got := battleLog.MessageSpeed(); got != 2 {
		t.Errorf("MessageSpeed() = %d, want 2", got)
	}
	messageWindow.Behavior().UpdateShowFast(messageWindow)
	if !messageWindow.PauseSkip() {
		t.Error("message window behavior not installed")
	}
}

// TestPluginInstallNilWindows 测试 nil 窗口被忽略
func TestPluginInstallNilWindows(t *testing.T) {
	p, err := NewPlugin(config.DefaultMessageSkipParameters(), newFakeDevice())
	if err != nil {
		t.Fatalf("NewPlugin() error = %v", err)
	}
	p.Install(nil, nil, nil)
}

// TestPluginVersion 测试版本字符串
func TestPluginVersion(t *testing.T) {
	if got := PluginVersion.String(); got != "0.9.0" {
		t.Errorf("PluginVersion = %q, want 0.9.0", got)
	}
}
