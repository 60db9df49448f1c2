//go:build linux || darwin || freebsd || netbsd || openbsd

package coro

import "golang.org/x/sys/unix"

func mapStack(size, page int, guard bool) (mem, usable []byte, guarded bool, err error) {
	total := size
	if guard {
		total += page
	}
	mem, err = unix.Mmap(-1, 0, total, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, false, err
	}
	if !guard {
		return mem, mem, false, nil
	}
	if err := unix.Mprotect(mem[:page], unix.PROT_NONE); err != nil {
		_ = unix.Munmap(mem)
		return nil, nil, false, err
	}
	return mem, mem[page:], true, nil
}

func unmapStack(mem []byte) error {
	return unix.Munmap(mem)
}
