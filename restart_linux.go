package sigflag

const saRestart = 0x10000000
