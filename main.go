package main

import (
	"flag"
	"log"

	"github.com/gonewx/messageskip/pkg/app"
	"github.com/gonewx/messageskip/pkg/config"
	"github.com/gonewx/messageskip/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose        = flag.Bool("verbose", false, "显示详细日志")
	paramsPath     = flag.String("params", "", "额外的插件参数 YAML 文件，覆盖内置声明")
	assignKeys     = flag.String("assign-keys", "", `保存跳过键列表，如 '["control","shift"]'`)
	longPressSkip  = flag.String("long-press-skip", "", `保存长按跳过开关（"true" 或 "false"）`)
	resetOverrides = flag.Bool("reset-overrides", false, "清除已保存的插件参数")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		ParamsPath:     *paramsPath,
		AssignKeys:     *assignKeys,
		LongPressSkip:  *longPressSkip,
		ResetOverrides: *resetOverrides,
	})
	if err != nil {
		log.SetOutput(flag.CommandLine.Output())
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Message Skip")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
