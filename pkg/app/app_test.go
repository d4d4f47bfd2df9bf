package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/messageskip/pkg/config"
	"github.com/gonewx/messageskip/pkg/embedded"
	"github.com/gonewx/messageskip/pkg/messageskip"
	"github.com/gonewx/messageskip/pkg/utils"
)

const testPluginsYAML = `
MessageSkip:
  assignKeyCodes: '["control"]'
  enableLongPressSkip: false
  scrollMessageSpeedRate: 100
  battleLogMessageSpeed: 1
`

// setupTestEnv 初始化嵌入数据并把 gdata 存储重定向到临时目录
func setupTestEnv(t *testing.T, pluginsYAML string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv(utils.MobileEmulateEnv, "")

	embedded.Init(fstest.MapFS{
		DeclaredParamsPath: &fstest.MapFile{Data: []byte(pluginsYAML)},
	})
}

// TestNewApp 测试使用内置参数启动
func TestNewApp(t *testing.T) {
	setupTestEnv(t, testPluginsYAML)

	a, err := NewApp(Config{Verbose: true})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if got := a.Plugin().Config().KeyNames(); len(got) != 1 || got[0] != "control" {
		t.Errorf("KeyNames() = %v, want [control]", got)
	}
	if a.sceneManager.GetCurrentScene() == nil {
		t.Error("no active scene")
	}
	if w, h := a.Layout(0, 0); w != config.GameWindowWidth || h != config.GameWindowHeight {
		t.Errorf("Layout() = %d, %d", w, h)
	}
}

// TestNewAppInvalidParameters 测试非法参数中止启动
func TestNewAppInvalidParameters(t *testing.T) {
	setupTestEnv(t, `
MessageSkip:
  assignKeyCodes: '["control","menu"]'
`)

	_, err := NewApp(Config{Verbose: true})
	if err == nil {
		t.Fatal("NewApp() error = nil, want error")
	}
	if !errors.Is(err, config.ErrInvalidParameter) {
		t.Errorf("error %v does not wrap ErrInvalidParameter", err)
	}
}

// TestNewAppOverrides 测试命令行覆盖值被持久化并在下次启动时生效
func TestNewAppOverrides(t *testing.T) {
	setupTestEnv(t, testPluginsYAML)

	a, err := NewApp(Config{Verbose: true, AssignKeys: `["shift","tab"]`, LongPressSkip: "true"})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if !a.Plugin().Config().LongPressSkip() {
		t.Error("LongPressSkip() = false, want override")
	}

	// 不带覆盖参数再次启动，读取持久化的值
	again, err := NewApp(Config{Verbose: true})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if got := again.Plugin().Config().KeyNames(); len(got) != 2 || got[0] != "shift" {
		t.Errorf("KeyNames() = %v, want persisted override", got)
	}

	// 清除覆盖值后恢复声明值
	reset, err := NewApp(Config{Verbose: true, ResetOverrides: true})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if reset.Plugin().Config().LongPressSkip() {
		t.Error("LongPressSkip() = true after reset")
	}
}

// TestNewAppInvalidOverrideNotPersisted 测试非法的命令行覆盖值不会被保存
func TestNewAppInvalidOverrideNotPersisted(t *testing.T) {
	setupTestEnv(t, testPluginsYAML)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown key name", Config{Verbose: true, AssignKeys: `["menu"]`}},
		{"malformed flag", Config{Verbose: true, LongPressSkip: "yes"}},
		{"valid keys with malformed flag", Config{Verbose: true, AssignKeys: `["shift"]`, LongPressSkip: "yes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApp(tt.cfg)
			if err == nil {
				t.Fatal("NewApp() error = nil, want error")
			}
			if !errors.Is(err, config.ErrInvalidParameter) {
				t.Errorf("error %v does not wrap ErrInvalidParameter", err)
			}

			// 不带覆盖参数的下一次启动不受影响
			a, err := NewApp(Config{Verbose: true})
			if err != nil {
				t.Fatalf("plain NewApp() after invalid override error = %v", err)
			}
			if got := a.Plugin().Config().KeyNames(); len(got) != 1 || got[0] != "control" {
				t.Errorf("KeyNames() = %v, want declared [control]", got)
			}
			if a.Plugin().Config().LongPressSkip() {
				t.Error("LongPressSkip() = true, want declared false")
			}
		})
	}
}

// TestNewAppParamsFile 测试额外参数文件覆盖内置声明
func TestNewAppParamsFile(t *testing.T) {
	setupTestEnv(t, testPluginsYAML)

	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := os.WriteFile(path, []byte("MessageSkip:\n  battleLogMessageSpeed: \"4\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	a, err := NewApp(Config{Verbose: true, ParamsPath: path})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if got := a.Plugin().Config().BattleLogMessageSpeed(); got != 4 {
		t.Errorf("BattleLogMessageSpeed() = %d, want 4", got)
	}

	if _, err := NewApp(Config{Verbose: true, ParamsPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("NewApp() error = nil for missing params file")
	}
}

// TestPluginName 测试插件名与参数文件中的键一致
func TestPluginName(t *testing.T) {
	if messageskip.PluginName != "MessageSkip" {
		t.Errorf("PluginName = %q", messageskip.PluginName)
	}
}

// TestNewAppMobileDefault 测试移动端默认开启长按跳过，且覆盖值优先
func TestNewAppMobileDefault(t *testing.T) {
	setupTestEnv(t, testPluginsYAML)
	t.Setenv(utils.MobileEmulateEnv, "1")

	a, err := NewApp(Config{Verbose: true})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if !a.Plugin().Config().LongPressSkip() {
		t.Error("LongPressSkip() = false on mobile")
	}

	b, err := NewApp(Config{Verbose: true, LongPressSkip: "false"})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if b.Plugin().Config().LongPressSkip() {
		t.Error("LongPressSkip() = true, override should win")
	}
}
