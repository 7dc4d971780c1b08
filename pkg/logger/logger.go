package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	timeColor    = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func stamp() string {
	return timeColor.Sprintf("[%s]", time.Now().Format("15:04:05"))
}

// Info 打印一般信息（蓝色）
func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), infoColor.Sprint(fmt.Sprintf(format, args...)))
}

// Success 打印成功信息（绿色）
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), successColor.Sprint("✓ "+fmt.Sprintf(format, args...)))
}

// Warning 打印警告信息（黄色）
func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), warnColor.Sprint("⚠ "+fmt.Sprintf(format, args...)))
}

// Error 打印错误信息（红色）
func Error(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), errorColor.Sprint("✗ "+fmt.Sprintf(format, args...)))
}
