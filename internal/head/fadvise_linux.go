package head

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential lets the kernel read ahead aggressively on f. Errors are
// ignored, the advice is only an optimization.
func adviseSequential(f *os.File) {
	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() {
		_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
	}
}
