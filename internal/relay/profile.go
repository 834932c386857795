package relay

import (
	"time"

	"remitscan/internal/config"
)

const mib = 1 << 20

// Profile bundles the per-deployment constants: the upstream deadline and the
// maximum accepted payload size. The deadline must leave a safety margin
// under the hosting platform's hard execution ceiling so the relay can return
// a clean 504 instead of being killed mid-request.
type Profile struct {
	Name           string
	Deadline       time.Duration
	MaxUploadBytes int64
}

var profiles = map[string]Profile{
	// Long-running server behind a ~30s platform ceiling.
	"server": {Name: "server", Deadline: 28 * time.Second, MaxUploadBytes: 50 * mib},
	// Short-lived function behind a ~10s ceiling with a small body limit.
	"edge": {Name: "edge", Deadline: 9500 * time.Millisecond, MaxUploadBytes: 4 * mib},
}

// ProfileFor resolves the configured platform profile, applying deadline and
// size overrides when set. Unknown profile names fall back to "server".
func ProfileFor(cfg *config.RelayConfig) Profile {
	p, ok := profiles[cfg.Profile]
	if !ok {
		p = profiles["server"]
	}
	if cfg.Deadline > 0 {
		p.Deadline = cfg.Deadline
	}
	if cfg.MaxUploadMB > 0 {
		p.MaxUploadBytes = cfg.MaxUploadMB * mib
	}
	return p
}
