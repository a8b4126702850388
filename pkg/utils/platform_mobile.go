//go:build mobile

package utils

// IsMobile 移动端编译时总是 true，切换键改为双指轻触
func IsMobile() bool {
	return true
}
