package game

import (
	"fmt"
	"log"

	"github.com/gonewx/messageskip/pkg/embedded"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const pluginOverridesObject = "plugins"

// PluginManager 插件参数管理器
//
// 插件参数由两部分组成：
//   - 声明值：随游戏发布的 YAML 文件（data/plugins.yaml），键为插件名
//   - 覆盖值：玩家修改并通过 gdata 持久化的参数，优先于声明值
//
// 参数值一律为字符串，由各插件自行校验。
type PluginManager struct {
	gdataManager *gdata.Manager               // gdata 跨平台存储管理器，可为 nil（降级模式）
	declared     map[string]map[string]string // 插件名 -> 参数名 -> 声明值
	overrides    map[string]map[string]string // 插件名 -> 参数名 -> 覆盖值
}

// NewPluginManager 创建插件参数管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，覆盖值只保存在内存中）
func NewPluginManager(gdataManager *gdata.Manager) *PluginManager {
	return &PluginManager{
		gdataManager: gdataManager,
		declared:     make(map[string]map[string]string),
		overrides:    make(map[string]map[string]string),
	}
}

// LoadDeclared 解析插件参数声明
// 多次调用时按参数合并，后加载的同名参数覆盖先加载的
func (pm *PluginManager) LoadDeclared(data []byte) error {
	var declared map[string]map[string]string
	if err := yaml.Unmarshal(data, &declared); err != nil {
		return fmt.Errorf("failed to parse plugin parameters: %w", err)
	}
	for name, params := range declared {
		if pm.declared[name] == nil {
			pm.declared[name] = make(map[string]string)
		}
		for k, v := range params {
			pm.declared[name][k] = v
		}
	}
	log.Printf("[PluginManager] Loaded parameters for %d plugin(s)", len(declared))
	return nil
}

// LoadDeclaredFile 从嵌入数据读取插件参数声明
func (pm *PluginManager) LoadDeclaredFile(path string) error {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read plugin parameters %s: %w", path, err)
	}
	return pm.LoadDeclared(data)
}

// Parameters 返回插件的最终参数（声明值 + 覆盖值）
// 返回新的映射，调用方可以随意修改
func (pm *PluginManager) Parameters(name string) map[string]string {
	params := make(map[string]string)
	for k, v := range pm.declared[name] {
		params[k] = v
	}

	overrides, err := pm.loadOverrides(name)
	if err != nil {
		// 覆盖值损坏不是致命错误，使用声明值
		log.Printf("[PluginManager] Warning: Failed to load overrides for %s: %v (using declared values)", name, err)
		return params
	}
	for k, v := range overrides {
		params[k] = v
	}
	return params
}

// SetOverride 设置并持久化一个参数覆盖值
// 新值在下次调用 Parameters 时生效（插件配置在启动时构建，需重启生效）
func (pm *PluginManager) SetOverride(name, key, value string) error {
	overrides, err := pm.loadOverrides(name)
	if err != nil {
		log.Printf("[PluginManager] Warning: Discarding unreadable overrides for %s: %v", name, err)
		overrides = nil
	}
	if overrides == nil {
		overrides = make(map[string]string)
	}
	overrides[key] = value
	return pm.saveOverrides(name, overrides)
}

// ClearOverrides 清除插件的全部覆盖值
func (pm *PluginManager) ClearOverrides(name string) error {
	return pm.saveOverrides(name, map[string]string{})
}

// loadOverrides 读取插件的覆盖值
// 降级模式下读取内存中的覆盖值
func (pm *PluginManager) loadOverrides(name string) (map[string]string, error) {
	if pm.gdataManager == nil {
		return pm.overrides[name], nil
	}

	if !pm.gdataManager.ObjectPropExists(pluginOverridesObject, name) {
		return nil, nil
	}

	data, err := pm.gdataManager.LoadObjectProp(pluginOverridesObject, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load overrides: %w", err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overrides: %w", err)
	}
	return overrides, nil
}

// saveOverrides 保存插件的覆盖值
func (pm *PluginManager) saveOverrides(name string, overrides map[string]string) error {
	if pm.gdataManager == nil {
		pm.overrides[name] = overrides
		return nil
	}

	data, err := yaml.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("failed to marshal overrides: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(pluginOverridesObject, name, data); err != nil {
		return fmt.Errorf("failed to save overrides: %w", err)
	}

	log.Printf("[PluginManager] Overrides for %s saved (%d value(s))", name, len(overrides))
	return nil
}
