package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/lanesim/display"
	"github.com/tsinghua-fib-lab/lanesim/task"
	"github.com/tsinghua-fib-lab/lanesim/utils/config"
	"github.com/tsinghua-fib-lab/lanesim/utils/randengine"
)

var (
	// 随机数种子，为0时使用当前时间
	seed = flag.Uint64("seed", 0, "random seed (0 means time based)")
	// 每步之后的等待时间，仅用于动画显示
	pace = flag.Duration("pace", 500*time.Millisecond, "real-time pause between steps (display only)")
	// 关闭清屏
	noClear = flag.Bool("no-clear", false, "do not clear the screen between frames")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "warn", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "lanesim")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// 日志输出到stderr，避免与画面混在一起
	logrus.SetOutput(os.Stderr)
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	c := config.Default()
	log.Infof("seed %d, config %+v", s, c)

	t, err := task.NewContext(c, randengine.New(s))
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := t.Run(ctx, display.NewConsole(os.Stdout, !*noClear), *pace); err != nil {
		log.Errorf("run: %v", err)
		os.Exit(1)
	}
	os.Stdout.WriteString("Simulation ended.\n")
}
