package config

// 屏幕与窗口布局常量（单位：像素）
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 816
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 624

	// WindowPadding 窗口内边距
	WindowPadding = 12.0
	// TextLineHeight 文字行高
	TextLineHeight = 18.0

	// MessageWindowHeight 文章显示窗口高度（屏幕底部，4 行）
	MessageWindowHeight = TextLineHeight*4 + WindowPadding*2
	// BattleLogWindowHeight 战斗日志窗口高度（屏幕顶部）
	BattleLogWindowHeight = TextLineHeight*BattleLogVisibleLines + WindowPadding*2
	// BattleLogVisibleLines 战斗日志可见行数
	BattleLogVisibleLines = 6

	// ScrollTextWindowHeight 滚动文章可见区域高度（全屏）
	ScrollTextWindowHeight = float64(GameWindowHeight)
)
