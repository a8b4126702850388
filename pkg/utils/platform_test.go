//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	if IsMobile() {
		t.Error("IsMobile() should be false on desktop")
	}

	t.Setenv(MobileEmulateEnv, "1")
	if !IsMobile() {
		t.Errorf("IsMobile() should be true with %s=1", MobileEmulateEnv)
	}
}
