//go:build linux || darwin || freebsd || netbsd || openbsd

package device

import "golang.org/x/sys/unix"

// mapHost maps anonymous pages and tries to lock them in RAM. Locking fails
// quietly when RLIMIT_MEMLOCK is too small; the buffer is then unpinned.
func mapHost(bytes int64) ([]byte, bool, error) {
	mem, err := unix.Mmap(-1, 0, int(bytes), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, false, err
	}
	pinned := unix.Mlock(mem) == nil
	return mem, pinned, nil
}

func unmapHost(mem []byte, pinned bool) error {
	if pinned {
		_ = unix.Munlock(mem)
	}
	return unix.Munmap(mem)
}
