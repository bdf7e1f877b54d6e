//go:build !linux && !darwin

package logger

func isTerminal(fd uintptr) bool {
	return false
}
