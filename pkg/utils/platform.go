//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按移动端方式处理输入（本地调试触摸切换）
const MobileEmulateEnv = "BUTTON_TRANSITIONS_MOBILE_EMULATE"

// IsMobile 桌面端编译时只在设置了 MobileEmulateEnv 时返回 true
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
