package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本，已有的换行符保留
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 单词超过最大宽度时按字符强制断行
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if face == nil || maxWidth <= 0 {
		return strings.Split(textStr, "\n")
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, face, maxWidth)...)
	}
	return lines
}

// wrapParagraph 对不含换行符的一段文字换行
func wrapParagraph(paragraph string, face text.Face, maxWidth float64) []string {
	if measureTextWidth(paragraph, face) <= maxWidth {
		return []string{paragraph}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(paragraph) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measureTextWidth(testLine, face) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// 单词本身超宽，按字符断开
		for _, r := range word {
			testLine := currentLine + string(r)
			if currentLine != "" && measureTextWidth(testLine, face) > maxWidth {
				lines = append(lines, currentLine)
				testLine = string(r)
			}
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, face text.Face) float64 {
	if textStr == "" {
		return 0
	}
	width, _ := text.Measure(textStr, face, 0)
	return width
}
