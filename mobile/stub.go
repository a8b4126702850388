//go:build !mobile

// Package mobile 的桌面端占位
//
// 普通 go build ./... 时 mobile.go 和 embed.go 都被构建标签排除，
// 这里保留同名导出函数，让包在没有 -tags mobile 时仍然可以编译。
package mobile

// Dummy 与 mobile.go 中的同名函数对应
func Dummy() {}
