//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package sigflag

const saRestart = 0x0002
