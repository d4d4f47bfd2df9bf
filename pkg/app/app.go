// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/gonewx/messageskip/pkg/config"
	"github.com/gonewx/messageskip/pkg/game"
	"github.com/gonewx/messageskip/pkg/input"
	"github.com/gonewx/messageskip/pkg/messageskip"
	"github.com/gonewx/messageskip/pkg/scenes"
	"github.com/gonewx/messageskip/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// DeclaredParamsPath 随应用发布的插件参数声明
const DeclaredParamsPath = "data/plugins.yaml"

// gdataAppName gdata 存储目录名
const gdataAppName = "messageskip"

// mobileDeclared 移动端追加的参数声明
const mobileDeclared = `
MessageSkip:
  enableLongPressSkip: "true"
`

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ParamsPath 额外的插件参数文件（磁盘路径），其中的值覆盖内置声明，为空则不加载
	ParamsPath string
	// AssignKeys 持久化覆盖跳过键列表（如 `["control","shift"]`），为空则不修改
	AssignKeys string
	// LongPressSkip 持久化覆盖长按跳过开关（"true"/"false"），为空则不修改
	LongPressSkip string
	// ResetOverrides 启动前清除已持久化的参数覆盖值
	ResetOverrides bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	plugin                   *messageskip.Plugin
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
// 插件参数非法时返回错误，调用方应中止启动。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	pluginManager, err := newPluginManager(cfg)
	if err != nil {
		return nil, err
	}

	device := input.NewDevice(nil)
	params := config.MessageSkipParametersFromMap(pluginManager.Parameters(messageskip.PluginName))
	plugin, err := messageskip.NewPlugin(params, device)
	if err != nil {
		return nil, fmt.Errorf("插件初始化失败: %w", err)
	}

	scene := scenes.NewMessageScene(device, plugin)
	plugin.Install(scene.MessageWindow(), scene.ScrollTextWindow(), scene.BattleLogWindow())

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	log.Printf("[App] Started with %s v%s", messageskip.PluginName, messageskip.PluginVersion)

	return &App{
		sceneManager: sceneManager,
		plugin:       plugin,
		verbose:      cfg.Verbose,
	}, nil
}

// newPluginManager 加载插件参数声明并应用命令行覆盖值
func newPluginManager(cfg Config) (*game.PluginManager, error) {
	// gdata 不可用时使用降级模式（覆盖值仅保存在内存中）
	gdataManager, err := gdata.Open(gdata.Config{AppName: gdataAppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open gdata storage: %v (overrides will not persist)", err)
		gdataManager = nil
	}

	pluginManager := game.NewPluginManager(gdataManager)
	if err := pluginManager.LoadDeclaredFile(DeclaredParamsPath); err != nil {
		return nil, fmt.Errorf("插件参数加载失败: %w", err)
	}

	// 触摸设备没有键盘，默认开启长按跳过（声明层，玩家覆盖值仍然优先）
	if utils.IsMobile() {
		if err := pluginManager.LoadDeclared([]byte(mobileDeclared)); err != nil {
			return nil, fmt.Errorf("移动端插件参数加载失败: %w", err)
		}
		log.Printf("[App] Mobile platform, long-press skip enabled by default")
	}

	if cfg.ParamsPath != "" {
		data, err := os.ReadFile(cfg.ParamsPath)
		if err != nil {
			return nil, fmt.Errorf("插件参数文件读取失败: %w", err)
		}
		if err := pluginManager.LoadDeclared(data); err != nil {
			return nil, fmt.Errorf("插件参数文件 %s: %w", cfg.ParamsPath, err)
		}
		log.Printf("[App] Loaded plugin parameters from %s", cfg.ParamsPath)
	}

	if cfg.ResetOverrides {
		if err := pluginManager.ClearOverrides(messageskip.PluginName); err != nil {
			return nil, fmt.Errorf("清除参数覆盖值失败: %w", err)
		}
	}

	overrides := make(map[string]string)
	if cfg.AssignKeys != "" {
		overrides[config.ParamAssignKeyCodes] = cfg.AssignKeys
	}
	if cfg.LongPressSkip != "" {
		overrides[config.ParamEnableLongPressSkip] = cfg.LongPressSkip
	}
	if len(overrides) == 0 {
		return pluginManager, nil
	}

	// 先校验合并后的参数再持久化，非法值不能写入存储，否则之后每次启动都会失败
	if err := validateOverrides(pluginManager, overrides); err != nil {
		return nil, fmt.Errorf("命令行参数非法，未保存: %w", err)
	}
	for key, value := range overrides {
		if err := pluginManager.SetOverride(messageskip.PluginName, key, value); err != nil {
			return nil, fmt.Errorf("保存参数覆盖值失败: %w", err)
		}
	}

	return pluginManager, nil
}

// validateOverrides 按插件的校验规则检查 当前参数 + 待保存覆盖值
func validateOverrides(pluginManager *game.PluginManager, overrides map[string]string) error {
	merged := pluginManager.Parameters(messageskip.PluginName)
	for key, value := range overrides {
		merged[key] = value
	}
	_, err := config.LoadMessageSkipConfig(config.MessageSkipParametersFromMap(merged), input.Vocabulary())
	return err
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右留黑边，线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Plugin 返回已安装的消息跳过插件
func (a *App) Plugin() *messageskip.Plugin {
	return a.plugin
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
