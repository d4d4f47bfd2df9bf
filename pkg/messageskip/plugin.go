package messageskip

import (
	"fmt"
	"log"

	"github.com/gonewx/messageskip/pkg/config"
	"github.com/gonewx/messageskip/pkg/input"
	"github.com/gonewx/messageskip/pkg/window"
)

// PluginName 插件名称
const PluginName = config.MessageSkipPluginName

// Version 插件版本
type Version struct {
	Major, Minor, Patch int
}

// String 返回 "major.minor.patch"
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// PluginVersion 当前插件版本
var PluginVersion = Version{Major: 0, Minor: 9, Patch: 0}

// Device 插件使用的输入设备能力
type Device interface {
	InputState
	InputAdvancer
}

// Plugin 消息跳过插件
// 持有启动时校验过的只读配置，并负责把跳过行为安装到各窗口
type Plugin struct {
	config  *config.MessageSkipConfig
	skipper *Skipper
	device  Device
}

// NewPlugin 校验插件参数并创建插件
//
// 参数：
//   - params: 原始插件参数
//   - device: 输入设备（通常为 *input.Device）
//
// 返回：
//   - *Plugin: 插件实例
//   - error: 参数非法时返回错误，调用方应中止启动
func NewPlugin(params config.MessageSkipParameters, device Device) (*Plugin, error) {
	cfg, err := config.LoadMessageSkipConfig(params, input.Vocabulary())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s plugin: %w", PluginName, err)
	}

	log.Printf("[MessageSkip] %s v%s initialized: %s", PluginName, PluginVersion, cfg)

	return &Plugin{
		config:  cfg,
		skipper: NewSkipper(cfg, device),
		device:  device,
	}, nil
}

// Config 返回插件配置
func (p *Plugin) Config() *config.MessageSkipConfig {
	return p.config
}

// Skipper 返回跳过判定
func (p *Plugin) Skipper() *Skipper {
	return p.skipper
}

// IsMessageSkip 当前是否处于跳过状态
func (p *Plugin) IsMessageSkip() bool {
	return p.skipper.IsMessageSkip()
}

// Install 为传入的窗口安装跳过行为，nil 窗口被忽略
func (p *Plugin) Install(
	messageWindow *window.MessageWindow,
	scrollTextWindow *window.ScrollTextWindow,
	battleLogWindow *window.BattleLogWindow,
) {
	if messageWindow != nil {
		WrapMessageWindow(messageWindow, p.skipper, p.device)
		log.Printf("[MessageSkip] Installed on message window")
	}
	if scrollTextWindow != nil {
		WrapScrollTextWindow(scrollTextWindow, p.skipper, p.config.ScrollMessageSpeedRate())
		log.Printf("[MessageSkip] Installed on scroll text window")
	}
	if battleLogWindow != nil {
		WrapBattleLogWindow(battleLogWindow, p.skipper, p.config.BattleLogMessageSpeed())
		log.Printf("[MessageSkip] Installed on battle log window")
	}
}
