package x11

import (
	"testing"

	"github.com/go-rwm/rwm/internal/geom"
)

func TestCleanMaskStripsLockBits(t *testing.T) {
	state := uint16(geom.ModMask1) | uint16(geom.ModMaskLock) | uint16(geom.ModMask2)
	got := CleanMask(state, geom.ModMask2)
	if got != geom.ModMask1 {
		t.Fatalf("CleanMask() = %v, want ModMask1", got)
	}
}

func TestFakePortImplementsPort(t *testing.T) {
	var _ Port = NewFakePort()
}
