//go:build !windows

package vst3

const comCompatible = false

func comSwap(*TUID) {}
