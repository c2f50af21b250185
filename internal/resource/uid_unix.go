//go:build !windows

package resource

import (
	"strconv"
	"syscall"
)

func uidString() string { return strconv.Itoa(syscall.Geteuid()) }
