package bridge

// #include "factory.h"
import "C"

import (
	"sync"

	"github.com/justyntemme/vst3shim/pkg/framework/config"
	"github.com/justyntemme/vst3shim/pkg/framework/debug"
)

var configureOnce sync.Once

// configure applies the environment configuration the first time the host
// enters the module. A bad configuration keeps the default logger; it never
// stops the module from loading. A log file stays open for the life of the
// module.
func configure() {
	configureOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			debug.Warn().Err(err).Msg("ignoring module configuration")
			return
		}
		logger, _, err := cfg.Logger()
		if err != nil {
			debug.Warn().Err(err).Msg("keeping default logger")
			return
		}
		debug.SetDefault(logger)
	})
}

//export GoModuleEntry
func GoModuleEntry(platform *C.char) C.bool {
	configure()
	debug.Debug().
		Str("platform", C.GoString(platform)).
		Int32("classes", Active().CountClasses()).
		Msg("module entry")
	return C.bool(true)
}

//export GoModuleExit
func GoModuleExit(platform *C.char) C.bool {
	debug.Debug().Str("platform", C.GoString(platform)).Msg("module exit")
	return C.bool(true)
}
