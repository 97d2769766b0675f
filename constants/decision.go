package constants

// ReuseAction is the recommendation produced by the reuse decision engine.
type ReuseAction string

const (
	ActionReuseExisting    ReuseAction = "REUSE_EXISTING"
	ActionReuseWithWarning ReuseAction = "REUSE_WITH_WARNING"
	ActionExtractNew       ReuseAction = "EXTRACT_NEW"
)

// Coverage thresholds, in percent, applied to the most recent overlapping
// session. At or above ReuseThreshold the stored data is served as-is;
// between WarnThreshold and ReuseThreshold it is served with a warning;
// below WarnThreshold a fresh extraction runs.
const (
	ReuseThreshold = 90.0
	WarnThreshold  = 70.0
)
