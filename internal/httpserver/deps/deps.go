package deps

import (
	"time"

	"github.com/MrSnakeDoc/devdocs/internal/catalog"
	"github.com/MrSnakeDoc/devdocs/internal/content"
	"github.com/MrSnakeDoc/devdocs/internal/logger"
	"github.com/MrSnakeDoc/devdocs/internal/metrics"
	"github.com/MrSnakeDoc/devdocs/internal/routing"
	"github.com/MrSnakeDoc/devdocs/internal/session"
	"github.com/MrSnakeDoc/devdocs/internal/usage"
	"github.com/MrSnakeDoc/devdocs/internal/web"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now
	SiteTitle string

	AllowedHosts      []string // Host headers allowed to access the server
	AllowedCIDRS      []string // IPs allowed to access readyz/metrics endpoints
	TrustProxy        bool     // true if running behind a trusted reverse proxy (e.g., cloudflared)
	LoginBurst        int      // login attempts allowed at once per IP
	LoginRefillPerMin int      // login tokens regained per minute per IP

	Routes   *routing.Table
	Catalog  *catalog.Registry
	Library  *content.Library
	Renderer *web.Renderer
	Sessions *session.Manager
	Usage    usage.Counter    // nil disables view counting
	Metrics  *metrics.Metrics // nil disables metrics
}

// Now returns the current time from TimeNow, or time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
