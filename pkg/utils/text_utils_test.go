package utils

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// TestWrapText 测试文本换行功能
// basicfont.Face7x13 每个字符宽 7 像素
func TestWrapText(t *testing.T) {
	face := text.NewGoXFace(basicfont.Face7x13)

	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{
			name:     "短文本不换行",
			input:    "short",
			maxWidth: 100,
			want:     []string{"short"},
		},
		{
			name:     "在空格处换行",
			input:    "hold control to skip",
			maxWidth: 7 * 12,
			want:     []string{"hold control", "to skip"},
		},
		{
			name:     "保留已有换行",
			input:    "a\nb c",
			maxWidth: 100,
			want:     []string{"a", "b c"},
		},
		{
			name:     "超长单词强制断行",
			input:    "abcdefghij",
			maxWidth: 7 * 4,
			want:     []string{"abcd", "efgh", "ij"},
		},
		{
			name:     "空文本",
			input:    "",
			maxWidth: 100,
			want:     []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.input, face, tt.maxWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestWrapTextNoFace 测试没有字体时只按换行符拆分
func TestWrapTextNoFace(t *testing.T) {
	got := WrapText("a b\nc", nil, 10)
	if want := []string{"a b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("WrapText() = %q, want %q", got, want)
	}
}
