package sigflag

const saRestart = 0x0008
