package progress

import (
	"os"

	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// ProvideProgressSink picks the spinner for terminals and plain lines otherwise
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive {
		return NewLineProgressReporter(os.Stdout)
	}
	return NewSpinnerProgressReporter()
}
