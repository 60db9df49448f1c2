//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package coro

// Without mmap the region comes from the Go heap and only the canary guards it.
func mapStack(size, _ int, _ bool) (mem, usable []byte, guarded bool, err error) {
	mem = make([]byte, size)
	return mem, mem, false, nil
}

func unmapStack([]byte) error { return nil }
