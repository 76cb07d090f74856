// Package module looks up cross-module ports. It only depends on the router
// seam so feature modules can import it next to their own ports type
package module

import phttp "toxmanager/internal/platform/net/http"

// Module is the part of a feature module the port helpers need
type Module interface {
	Name() string
	Ports() any
	MountRoutes(r phttp.Router)
}
