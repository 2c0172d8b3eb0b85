package contentcache

import (
	"time"
)

// Status is the outcome of a cache lookup.
type Status string

const (
	StatusHit   Status = "hit"
	StatusMiss  Status = "miss"
	StatusStale Status = "stale"
)

func (s Status) String() string {
	return string(s)
}

// StaleReason explains a stale lookup.
type StaleReason string

const (
	StaleReasonNone     StaleReason = ""
	StaleReasonVersion  StaleReason = "version"
	StaleReasonAge      StaleReason = "age"
	StaleReasonDegraded StaleReason = "degraded"
)

func (r StaleReason) String() string {
	return string(r)
}

// Freshness is the verdict of the staleness policy for a present entry.
type Freshness string

const (
	Fresh          Freshness = "fresh"
	StaleByVersion Freshness = "stale-by-version"
	StaleByAge     Freshness = "stale-by-age"
)

// StalenessPolicy decides whether an entry may be served as-is.
type StalenessPolicy struct {
	CurrentVersion string
	ThresholdDays  int
}

func (p StalenessPolicy) threshold() time.Duration {
	return time.Duration(p.ThresholdDays) * 24 * time.Hour
}

// Evaluate is a pure function of the entry's version and generation time,
// the current version, now and the threshold. A version mismatch wins over
// age. An entry is stale by age only when strictly older than the
// threshold; generation times in the future count as age zero.
func (p StalenessPolicy) Evaluate(generatorVersion string, generatedAt, now time.Time) Freshness {
	if generatorVersion != p.CurrentVersion {
		return StaleByVersion
	}
	age := now.Sub(generatedAt)
	if age < 0 {
		age = 0
	}
	if age > p.threshold() {
		return StaleByAge
	}
	return Fresh
}

// EvaluateEntry applies Evaluate to an entry.
func (p StalenessPolicy) EvaluateEntry(e *Entry, now time.Time) Freshness {
	return p.Evaluate(e.GeneratorVersion(), e.GeneratedAt(), now)
}

// Lookup is the result of reading a key.
type Lookup struct {
	Status Status
	Reason StaleReason
	Entry  *Entry
}

// Classify turns an optional entry into a Lookup.
func (p StalenessPolicy) Classify(e *Entry, now time.Time) Lookup {
	if e == nil {
		return Lookup{Status: StatusMiss}
	}
	switch p.EvaluateEntry(e, now) {
	case StaleByVersion:
		return Lookup{Status: StatusStale, Reason: StaleReasonVersion, Entry: e}
	case StaleByAge:
		return Lookup{Status: StatusStale, Reason: StaleReasonAge, Entry: e}
	default:
		return Lookup{Status: StatusHit, Entry: e}
	}
}

// Degraded marks a last-known entry served because storage failed.
func Degraded(e *Entry) Lookup {
	return Lookup{Status: StatusStale, Reason: StaleReasonDegraded, Entry: e}
}
