//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// ebitenmobile 绑定入口在 mobile.go 中，只在 -tags mobile 时编译；
// 普通的 go build ./... 只看到这个空包。
package mobile

// Dummy 保证包在桌面端构建时仍有导出符号
func Dummy() {}
