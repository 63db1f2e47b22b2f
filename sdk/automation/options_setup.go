package automation

import (
	"github.com/lfarias/dawautomation/internal/logger"
	"github.com/lfarias/dawautomation/sdk/contracts"
)

// applyDefaultEngineOptions sets default values for EngineOptions if not
// explicitly provided. The surface has no default; NewEngine rejects a
// nil one.
func applyDefaultEngineOptions(opts ...contracts.EngineOption) contracts.EngineOptions {
	options := &contracts.EngineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.Layout == nil {
		layout := contracts.DefaultLayout()
		options.Layout = &layout
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options
}
