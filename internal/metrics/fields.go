package metrics

// Attribute keys shared by the otel instruments.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrEndpoint = "endpoint"
	AttrCategory = "category"
	AttrOutcome  = "outcome"
)

// Cache lookup outcomes.
const (
	OutcomeHit     = "hit"     // entry fresh enough to serve as-is
	OutcomeRefresh = "refresh" // entry refetched and overwritten
	OutcomeStale   = "stale"   // refetch failed, stale entry served
	OutcomeCold    = "cold"    // no entry and refetch failed
)
