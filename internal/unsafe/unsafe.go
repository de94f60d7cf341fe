// SPDX-License-Identifier: Unlicense OR MIT

package unsafe

import (
	"unsafe"
)

// BytesView returns a byte slice view of a slice.
func BytesView[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*sz)
}

// SizeOf returns the size in bytes of one element of type T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SliceOf returns a slice of n bytes starting at a (native) pointer.
func SliceOf(p unsafe.Pointer, n int) []byte {
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}
