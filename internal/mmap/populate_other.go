//go:build unix && !linux && !freebsd

package mmap

const populateFlag = 0
