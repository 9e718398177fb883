// logging.go wraps github.com/op/go-logging so call sites read
// elog.Debugf(...)/elog.Noticef(...) without importing go-logging
// directly everywhere. Hot paths (DoMove, move generation, TT.Probe)
// never log; this is reserved for FEN/config/TT lifecycle events, the
// same scope the teacher's own table-init log.Println calls covered,
// just behind a level a driver can raise or silence (stray stdout
// output corrupts a UCI session).
package engine

import (
	"os"

	"github.com/op/go-logging"
)

var elog = logging.MustGetLogger("engine")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc} ▶ %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveled)
}

// SetLogLevel lets a driver raise or lower the core's log verbosity.
// level is one of the go-logging level names: CRITICAL, ERROR, WARNING,
// NOTICE, INFO, DEBUG.
func SetLogLevel(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	logging.SetLevel(lvl, "engine")
	return nil
}
