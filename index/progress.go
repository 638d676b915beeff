package index

import (
	"time"

	"github.com/schollz/progressbar/v3"
)

// newProgressBar wraps progressbar/v3 with the options used throughout the
// build pipeline: a fixed description, no output when total is zero (an
// empty corpus), and a throttled render rate so a full JMdict pass doesn't
// spend its time repainting a terminal.
func newProgressBar(total int, description string) *progressbar.ProgressBar {
	if total <= 0 {
		return progressbar.DefaultSilent(0)
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
