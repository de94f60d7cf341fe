// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux && !windows
// +build !linux,!windows

package mainthread

func threadID() uint64 {
	return 0
}
