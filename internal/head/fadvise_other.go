//go:build !linux

package head

import "os"

func adviseSequential(*os.File) {}
