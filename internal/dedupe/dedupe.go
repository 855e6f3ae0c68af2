package dedupe

// Package dedupe holds shared singleflight groups. The starter listing is
// fetched by both the selection screen and the roster screen; a shared
// group keyed by server URL ensures only one request is in flight.

import "golang.org/x/sync/singleflight"

// StartersGroup deduplicates concurrent starter-list fetches keyed by the
// service base URL.
var StartersGroup singleflight.Group
