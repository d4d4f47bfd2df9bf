//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/plugins.yaml 是根目录 data/plugins.yaml 的副本，修改声明后需同步：
//
//	mkdir -p mobile/data && cp data/plugins.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/plugins.yaml
var dataFS embed.FS
