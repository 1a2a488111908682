package log

const (
	ANSI_BOLD_RED   = "\033[31;1m"
	ANSI_YELLOW     = "\033[0;33m"
	ANSI_BOLD_WHITE = "\033[37;1m"
	ANSI_RESET      = "\033[0;m"
)
