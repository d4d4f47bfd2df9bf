package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MessageSkipPluginName 插件名称，同时作为插件参数文件中的键
const MessageSkipPluginName = "MessageSkip"

// 插件参数键名（与 data/plugins.yaml 中的声明一致）
const (
	ParamAssignKeyCodes         = "assignKeyCodes"
	ParamEnableLongPressSkip    = "enableLongPressSkip"
	ParamScrollMessageSpeedRate = "scrollMessageSpeedRate"
	ParamBattleLogMessageSpeed  = "battleLogMessageSpeed"
)

// 开关参数允许的两个字面值
const (
	flagTrue  = "true"
	flagFalse = "false"
)

// ErrInvalidParameter 插件参数非法（未知键名、非法开关值、非数字速度）
// 只在初始化时产生，调用方应中止启动
var ErrInvalidParameter = errors.New("plugin parameter error")

// MessageSkipParameters 消息跳过插件的原始参数
// 所有字段都是声明式配置里的原始字符串，由 LoadMessageSkipConfig 校验
type MessageSkipParameters struct {
	// AssignKeyCodes 分配给跳过功能的键名列表，JSON 数组字符串，如 `["control","shift"]`
	AssignKeyCodes string `yaml:"assignKeyCodes"`
	// EnableLongPressSkip 长按/长触摸是否也触发跳过，"true" 或 "false"，空值视为 "false"
	EnableLongPressSkip string `yaml:"enableLongPressSkip"`
	// ScrollMessageSpeedRate 滚动文本跳过时的速度倍率（十进制整数）
	ScrollMessageSpeedRate string `yaml:"scrollMessageSpeedRate"`
	// BattleLogMessageSpeed 战斗日志跳过时的显示速度（十进制整数，越小越快）
	BattleLogMessageSpeed string `yaml:"battleLogMessageSpeed"`
}

// DefaultMessageSkipParameters 返回默认插件参数
func DefaultMessageSkipParameters() MessageSkipParameters {
	return MessageSkipParameters{
		AssignKeyCodes:         `["control"]`,
		EnableLongPressSkip:    flagFalse,
		ScrollMessageSpeedRate: "100",
		BattleLogMessageSpeed:  "1",
	}
}

// MessageSkipParametersFromMap 从插件管理器提供的键值表构建参数
// 缺失的键保留默认值
func MessageSkipParametersFromMap(values map[string]string) MessageSkipParameters {
	params := DefaultMessageSkipParameters()
	if v, ok := values[ParamAssignKeyCodes]; ok {
		params.AssignKeyCodes = v
	}
	if v, ok := values[ParamEnableLongPressSkip]; ok {
		params.EnableLongPressSkip = v
	}
	if v, ok := values[ParamScrollMessageSpeedRate]; ok {
		params.ScrollMessageSpeedRate = v
	}
	if v, ok := values[ParamBattleLogMessageSpeed]; ok {
		params.BattleLogMessageSpeed = v
	}
	return params
}

// MessageSkipConfig 校验后的消息跳过配置
// 启动时构建一次，之后只读，可以安全地在任意位置共享
type MessageSkipConfig struct {
	keyNames               []string
	longPressSkip          bool
	scrollMessageSpeedRate int
	battleLogMessageSpeed  int
}

// KeyNames 返回分配的键名列表（已去重，保持首次出现顺序）
// 返回副本，调用方修改不会影响配置
func (c *MessageSkipConfig) KeyNames() []string {
	names := make([]string, len(c.keyNames))
	copy(names, c.keyNames)
	return names
}

// LongPressSkip 长按/长触摸是否触发跳过
func (c *MessageSkipConfig) LongPressSkip() bool {
	return c.longPressSkip
}

// ScrollMessageSpeedRate 滚动文本跳过时的速度倍率
func (c *MessageSkipConfig) ScrollMessageSpeedRate() int {
	return c.scrollMessageSpeedRate
}

// BattleLogMessageSpeed 战斗日志跳过时的显示速度
func (c *MessageSkipConfig) BattleLogMessageSpeed() int {
	return c.battleLogMessageSpeed
}

// Equal 判断两个配置是否完全一致（包括键名顺序）
func (c *MessageSkipConfig) Equal(other *MessageSkipConfig) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.longPressSkip != other.longPressSkip ||
		c.scrollMessageSpeedRate != other.scrollMessageSpeedRate ||
		c.battleLogMessageSpeed != other.battleLogMessageSpeed ||
		len(c.keyNames) != len(other.keyNames) {
		return false
	}
	for i := range c.keyNames {
		if c.keyNames[i] != other.keyNames[i] {
			return false
		}
	}
	return true
}

// String 返回便于日志输出的配置摘要
func (c *MessageSkipConfig) String() string {
	return fmt.Sprintf("keys=%v longPress=%v scrollRate=%d battleLogSpeed=%d",
		c.keyNames, c.longPressSkip, c.scrollMessageSpeedRate, c.battleLogMessageSpeed)
}

// LoadMessageSkipConfig 校验原始参数并构建配置
//
// 参数：
//   - params: 原始插件参数
//   - vocabulary: 宿主键映射中定义的全部键名，分配的键名必须属于该集合
//
// 返回：
//   - *MessageSkipConfig: 校验通过的配置
//   - error: 任一参数非法时返回包装了 ErrInvalidParameter 的错误，此时配置为 nil
func LoadMessageSkipConfig(params MessageSkipParameters, vocabulary []string) (*MessageSkipConfig, error) {
	keyNames, err := parseKeyNameList(params.AssignKeyCodes, vocabulary)
	if err != nil {
		return nil, err
	}

	longPressSkip, err := parseFlag(params.EnableLongPressSkip)
	if err != nil {
		return nil, err
	}

	scrollRate, err := parseSpeed(params.ScrollMessageSpeedRate)
	if err != nil {
		return nil, err
	}

	battleLogSpeed, err := parseSpeed(params.BattleLogMessageSpeed)
	if err != nil {
		return nil, err
	}

	return &MessageSkipConfig{
		keyNames:               keyNames,
		longPressSkip:          longPressSkip,
		scrollMessageSpeedRate: scrollRate,
		battleLogMessageSpeed:  battleLogSpeed,
	}, nil
}

// invalidValue 构造参数错误，格式与插件的诊断输出保持一致
func invalidValue(value string) error {
	return fmt.Errorf("%s: %w: invalid value. (%s)", MessageSkipPluginName, ErrInvalidParameter, value)
}

// parseKeyNameList 解析键名数组并按词表校验
// JSON 数组同时也是合法的 YAML 流式序列，因此直接交给 yaml 解析。
// 文档必须是序列：空串、null、~ 或只有注释都不是合法的键名列表，只有 [] 表示空列表
func parseKeyNameList(raw string, vocabulary []string) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: cannot parse key list %q: %v",
			MessageSkipPluginName, ErrInvalidParameter, raw, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, invalidValue(raw)
	}

	var targets []string
	if err := doc.Content[0].Decode(&targets); err != nil {
		return nil, fmt.Errorf("%s: %w: cannot parse key list %q: %v",
			MessageSkipPluginName, ErrInvalidParameter, raw, err)
	}

	known := make(map[string]struct{}, len(vocabulary))
	for _, name := range vocabulary {
		known[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(targets))
	keyNames := make([]string, 0, len(targets))
	for _, name := range targets {
		if _, ok := known[name]; !ok {
			return nil, invalidValue(name)
		}
		// 重复的键名不视为错误，只保留第一次出现的位置
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		keyNames = append(keyNames, name)
	}
	return keyNames, nil
}

// parseFlag 解析开关参数，只接受 "true" / "false"
func parseFlag(raw string) (bool, error) {
	switch raw {
	case flagTrue:
		return true, nil
	case flagFalse, "":
		return false, nil
	default:
		return false, invalidValue(raw)
	}
}

// parseSpeed 解析十进制整数速度值，不做范围限制
func parseSpeed(raw string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		return 0, invalidValue(raw)
	}
	return int(v), nil
}
