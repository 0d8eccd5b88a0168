package log

import (
	"fmt"
	"os"
	"strings"
)

var PrintfDefaultLevel = LvlInfo

func (l *logger) Printf(msg string, stuff ...any) {
	msg = fmt.Sprintf(msg, stuff...)
	l.writeskip(0, msg, PrintfDefaultLevel, nil)
}

func Printf(msg string, stuff ...any) {
	root.Printf(msg, stuff...)
}

func Infof(msg string, stuff ...any) {
	msg = strings.TrimSuffix(msg, "\n")
	msg = fmt.Sprintf(msg, stuff...)
	root.writeskip(0, msg, LvlInfo, nil)
}

func Warnf(msg string, stuff ...any) {
	msg = strings.TrimSuffix(msg, "\n")
	msg = fmt.Sprintf(msg, stuff...)
	root.writeskip(0, msg, LvlWarn, nil)
}

var testloghandler Handler

// for test packages to call in init
func ResetForTesting() {
	if testloghandler != nil {
		return
	}
	lvl := LvlWarn
	if x := os.Getenv("TESTLOGLVL"); x != "" && x != "0" { // 0=crit, same as not setting it
		lvl = MustParseLevel(x)
	}
	testloghandler = LvlFilterHandler(lvl, StreamHandler(os.Stderr, TerminalFormat(true)))
	Root().SetHandler(testloghandler)
}

func MustParseLevel(s string) Lvl {
	lvl, err := ParseLevel(s)
	if err != nil {
		panic(err.Error())
	}
	return lvl
}
