// Package scenes 包含应用中可切换的场景
package scenes

import (
	"image/color"
	"log"
	"strings"

	"github.com/gonewx/messageskip/pkg/config"
	"github.com/gonewx/messageskip/pkg/utils"
	"github.com/gonewx/messageskip/pkg/window"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 脚本步骤类型
const (
	stepShowText = iota
	stepScrollText
	stepBattleLog
)

// scriptStep 演示脚本中的一步
type scriptStep struct {
	kind   int
	text   string
	lines  []string // 战斗日志的多行
	speed  int
	noFast bool
}

// demoScript 循环播放的演示脚本
// 文字只使用 ASCII，basicfont 不含其他字形
var demoScript = []scriptStep{
	{kind: stepShowText, text: "Welcome to the message skip demo.\nHold CTRL to skip messages."},
	{kind: stepShowText, text: `Control codes work too:\.wait,\|long wait,\!pause.`},
	{kind: stepShowText, text: `\>This line shows at once.\<` + "\nThis one types out."},
	{kind: stepScrollText, speed: 2, text: "A long time ago\nin a kingdom far away\n\nthe heroes set out\nto end the long night.\n\nHold CTRL to scroll faster."},
	{kind: stepBattleLog, lines: []string{
		"Slime appears!",
		"Hero attacks!",
		"Slime takes 12 damage!",
		"Slime attacks!",
		"Hero takes 3 damage!",
		"Slime is defeated!",
	}},
	{kind: stepScrollText, speed: 2, noFast: true, text: "This scroll text\ncannot be fast forwarded.\n\nSkip keys are ignored here."},
	{kind: stepShowText, text: "That is all.\nThe demo starts over."},
}

// 颜色
var (
	backgroundColor  = color.RGBA{R: 24, G: 28, B: 48, A: 255}
	windowFillColor  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	windowFrameColor = color.RGBA{R: 220, G: 220, B: 240, A: 255}
	skipLabelColor   = color.RGBA{R: 255, G: 210, B: 80, A: 255}
)

// SkipIndicator 报告当前是否处于跳过状态
type SkipIndicator interface {
	IsMessageSkip() bool
}

// MessageScene 演示场景
//
// 依次向消息队列和战斗日志投放演示脚本，每帧先更新一次输入设备，
// 然后依次更新文章显示窗口、滚动文章窗口和战斗日志窗口。
type MessageScene struct {
	device        window.Input
	skip          SkipIndicator
	message       *window.GameMessage
	messageWindow *window.MessageWindow
	scrollWindow  *window.ScrollTextWindow
	battleLog     *window.BattleLogWindow

	face     *text.GoXFace
	nextStep int
	frame    int
}

// NewMessageScene 创建演示场景
//
// 参数：
//   - device: 输入设备，每帧由场景调用一次 Update
//   - skip: 跳过状态来源，用于绘制跳过提示，可为 nil
func NewMessageScene(device window.Input, skip SkipIndicator) *MessageScene {
	message := window.NewGameMessage()
	return &MessageScene{
		device:        device,
		skip:          skip,
		message:       message,
		messageWindow: window.NewMessageWindow(message, device),
		scrollWindow:  window.NewScrollTextWindow(message, device, config.ScrollTextWindowHeight, config.TextLineHeight),
		battleLog:     window.NewBattleLogWindow(device),
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

// MessageWindow 返回文章显示窗口（用于安装插件）
func (s *MessageScene) MessageWindow() *window.MessageWindow { return s.messageWindow }

// ScrollTextWindow 返回滚动文章窗口
func (s *MessageScene) ScrollTextWindow() *window.ScrollTextWindow { return s.scrollWindow }

// BattleLogWindow 返回战斗日志窗口
func (s *MessageScene) BattleLogWindow() *window.BattleLogWindow { return s.battleLog }

// StepsPlayed 已投放的脚本步骤数
func (s *MessageScene) StepsPlayed() int { return s.nextStep }

// Update 更新场景
func (s *MessageScene) Update(deltaTime float64) {
	s.frame++
	s.device.Update()

	s.messageWindow.Update()
	s.scrollWindow.Update()
	s.battleLog.Update()

	if s.isIdle() {
		s.playNextStep()
	}
}

// isIdle 所有窗口都空闲时才投放下一步
func (s *MessageScene) isIdle() bool {
	return !s.message.HasText() &&
		!s.messageWindow.IsOpen() &&
		!s.scrollWindow.IsActive() &&
		!s.battleLog.IsBusy()
}

func (s *MessageScene) playNextStep() {
	step := demoScript[s.nextStep%len(demoScript)]
	s.nextStep++

	switch step.kind {
	case stepShowText:
		s.battleLog.Clear()
		s.message.Add(step.text)
	case stepScrollText:
		s.battleLog.Clear()
		s.message.AddScroll(step.text, step.speed, step.noFast)
	case stepBattleLog:
		for _, line := range step.lines {
			s.battleLog.Push(line)
		}
	}
	log.Printf("[MessageScene] Step %d (frame %d)", s.nextStep, s.frame)
}

// Draw 绘制场景
func (s *MessageScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if s.scrollWindow.IsActive() {
		s.drawScrollText(screen)
	}
	if lines := s.battleLog.Lines(); len(lines) > 0 {
		s.drawBattleLog(screen, lines)
	}
	if s.messageWindow.IsOpen() {
		s.drawMessageWindow(screen)
	}
	if s.skip != nil && s.skip.IsMessageSkip() {
		s.drawText(screen, "SKIP", config.GameWindowWidth-48, config.WindowPadding, skipLabelColor)
	}
}

func (s *MessageScene) drawMessageWindow(screen *ebiten.Image) {
	y := float64(config.GameWindowHeight) - config.MessageWindowHeight
	drawWindowFrame(screen, 0, y, config.GameWindowWidth, config.MessageWindowHeight)
	lines := utils.WrapText(s.messageWindow.VisibleText(), s.face, config.GameWindowWidth-config.WindowPadding*2)
	s.drawText(screen, strings.Join(lines, "\n"), config.WindowPadding, y+config.WindowPadding, color.White)

	// 翻页等待提示，闪烁显示
	if s.messageWindow.IsPaused() && (s.frame/20)%2 == 0 {
		x := float64(config.GameWindowWidth)/2 - 4
		s.drawText(screen, "v", x, float64(config.GameWindowHeight)-config.WindowPadding-config.TextLineHeight/2, color.White)
	}
}

func (s *MessageScene) drawScrollText(screen *ebiten.Image) {
	// originY 为负时文本仍在窗口底部以下
	top := -s.scrollWindow.OriginY()
	for i, line := range strings.Split(s.scrollWindow.Text(), "\n") {
		y := top + float64(i)*config.TextLineHeight
		if y < -config.TextLineHeight || y > config.ScrollTextWindowHeight {
			continue
		}
		width, _ := text.Measure(line, s.face, 0)
		x := (float64(config.GameWindowWidth) - width) / 2
		s.drawText(screen, line, x, y, color.White)
	}
}

func (s *MessageScene) drawBattleLog(screen *ebiten.Image, lines []string) {
	if len(lines) > config.BattleLogVisibleLines {
		lines = lines[len(lines)-config.BattleLogVisibleLines:]
	}
	drawWindowFrame(screen, 0, 0, config.GameWindowWidth, config.BattleLogWindowHeight)
	s.drawText(screen, strings.Join(lines, "\n"), config.WindowPadding, config.WindowPadding, color.White)
}

func (s *MessageScene) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = config.TextLineHeight
	text.Draw(screen, str, s.face, op)
}

// drawWindowFrame 绘制半透明窗口背景和边框
func drawWindowFrame(screen *ebiten.Image, x, y, width, height float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), windowFillColor, true)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, windowFrameColor, true)
}
