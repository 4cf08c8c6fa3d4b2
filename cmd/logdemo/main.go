// Command logdemo exercises the logging package end to end. With no
// arguments it logs colorized records to stdout; with a path argument it
// logs to a rotated file instead:
//
//	logdemo
//	logdemo ./app.log
package main

import (
	"fmt"
	"os"

	"github.com/kestrelworks/logging"
)

func main() {
	if len(os.Args) > 1 {
		if err := logging.InitFile(os.Args[1], logging.TraceLevel); err != nil {
			fmt.Fprintln(os.Stderr, "logdemo:", err)
			os.Exit(1)
		}
		defer func() { _ = logging.Close() }()
	} else {
		logging.Init(os.Stdout, logging.TraceLevel)
	}

	settings := logging.FileSettings{
		ClearOnStartup: false,
		EnableRotation: true,
		MaxFileSize:    64 << 10,
		MaxBackups:     5,
	}
	if err := logging.Configure(settings); err != nil {
		fmt.Fprintln(os.Stderr, "logdemo:", err)
		os.Exit(1)
	}

	_ = logging.Trace("starting application...")
	_ = logging.Debugf("initializing system with value: %d", 42)
	_ = logging.Info("system ready")
	_ = logging.Warn("low battery")
	_ = logging.Error("system failure")

	runWorker()
}
