//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把项目根目录的 data/button_transitions.yaml 复制到 mobile/data/。
//
// 手动构建：
//
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/button_transitions.yaml
var dataFS embed.FS
