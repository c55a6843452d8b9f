package ticket

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// A cancellation policy is stored as a JSON object mapping time-bucket labels
// to refund percentage descriptions, exactly as received from the booking
// partner, e.g.
//
//	{"0-12h": "100% Refund", "12-24h": "50% Refund", ">24h": "No Refund"}
//
// The raw document is locked at booking time and never rewritten; parsing
// happens on demand when a refund amount has to be resolved.

var (
	rangeLabelRegex    = regexp.MustCompile(`^(\d+)-(\d+)h$`)
	openLabelRegex     = regexp.MustCompile(`^>(\d+)h$`)
	percentValueRegex  = regexp.MustCompile(`^(\d+(?:\.\d+)?)%`)
)

// PolicyResolutionError reports a cancellation policy that could not be
// parsed or did not yield exactly one bucket for the given elapsed time.
// Resolution never silently defaults to 0% or 100%.
type PolicyResolutionError struct {
	Reason       string
	ElapsedHours float64
}

func (e *PolicyResolutionError) Error() string {
	return fmt.Sprintf("cancellation policy resolution failed: %s (elapsed=%.2fh)", e.Reason, e.ElapsedHours)
}

// PolicyBucket is one resolved time range of a cancellation policy.
// LowerHours is inclusive; UpperHours is exclusive and nil for the
// open-ended catch-all.
type PolicyBucket struct {
	Label      string
	LowerHours float64
	UpperHours *float64
	Percent    float64
}

// CancellationPolicy is the parsed, ordered bucket list of a policy document.
type CancellationPolicy struct {
	buckets []PolicyBucket
}

// ParseCancellationPolicy parses a raw policy JSON document into ordered
// buckets. Labels must be either "N-Mh" ranges or a ">Nh" catch-all;
// values must carry a leading percentage or read "No Refund".
func ParseCancellationPolicy(raw []byte) (*CancellationPolicy, error) {
	if len(raw) == 0 {
		return nil, &PolicyResolutionError{Reason: "policy document is empty"}
	}

	var entries map[string]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &PolicyResolutionError{Reason: fmt.Sprintf("invalid policy JSON: %v", err)}
	}
	if len(entries) == 0 {
		return nil, &PolicyResolutionError{Reason: "policy has no buckets"}
	}

	buckets := make([]PolicyBucket, 0, len(entries))
	for label, value := range entries {
		bucket, err := parseBucket(label, value)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].LowerHours < buckets[j].LowerHours
	})

	return &CancellationPolicy{buckets: buckets}, nil
}

func parseBucket(label, value string) (PolicyBucket, error) {
	percent, err := parsePercent(label, value)
	if err != nil {
		return PolicyBucket{}, err
	}

	if m := rangeLabelRegex.FindStringSubmatch(label); m != nil {
		lower, _ := strconv.ParseFloat(m[1], 64)
		upper, _ := strconv.ParseFloat(m[2], 64)
		if upper <= lower {
			return PolicyBucket{}, &PolicyResolutionError{
				Reason: fmt.Sprintf("bucket %q has non-positive range", label),
			}
		}
		return PolicyBucket{Label: label, LowerHours: lower, UpperHours: &upper, Percent: percent}, nil
	}

	if m := openLabelRegex.FindStringSubmatch(label); m != nil {
		lower, _ := strconv.ParseFloat(m[1], 64)
		return PolicyBucket{Label: label, LowerHours: lower, Percent: percent}, nil
	}

	return PolicyBucket{}, &PolicyResolutionError{
		Reason: fmt.Sprintf("unrecognized bucket label %q", label),
	}
}

func parsePercent(label, value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if strings.EqualFold(trimmed, "No Refund") {
		return 0, nil
	}
	if m := percentValueRegex.FindStringSubmatch(trimmed); m != nil {
		percent, _ := strconv.ParseFloat(m[1], 64)
		if percent > 100 {
			return 0, &PolicyResolutionError{
				Reason: fmt.Sprintf("bucket %q refund percentage exceeds 100", label),
			}
		}
		return percent, nil
	}
	return 0, &PolicyResolutionError{
		Reason: fmt.Sprintf("bucket %q has unparseable refund value %q", label, value),
	}
}

// Buckets returns the ordered buckets.
func (p *CancellationPolicy) Buckets() []PolicyBucket {
	out := make([]PolicyBucket, len(p.buckets))
	copy(out, p.buckets)
	return out
}

// Resolve picks the single bucket covering elapsedHours. Ranges are
// inclusive on the lower bound and exclusive on the upper bound; the ">Nh"
// catch-all covers every elapsed value of N hours or more that no closed
// range claimed.
func (p *CancellationPolicy) Resolve(elapsedHours float64) (PolicyBucket, error) {
	if elapsedHours < 0 {
		return PolicyBucket{}, &PolicyResolutionError{
			Reason:       "elapsed hours cannot be negative",
			ElapsedHours: elapsedHours,
		}
	}

	for _, b := range p.buckets {
		if b.UpperHours != nil {
			if elapsedHours >= b.LowerHours && elapsedHours < *b.UpperHours {
				return b, nil
			}
			continue
		}
		if elapsedHours >= b.LowerHours {
			return b, nil
		}
	}

	return PolicyBucket{}, &PolicyResolutionError{
		Reason:       "no bucket covers the elapsed time",
		ElapsedHours: elapsedHours,
	}
}

// RefundAmount resolves the applicable bucket and applies its percentage to
// the ticket amount.
func (p *CancellationPolicy) RefundAmount(ticketAmount, elapsedHours float64) (float64, PolicyBucket, error) {
	bucket, err := p.Resolve(elapsedHours)
	if err != nil {
		return 0, PolicyBucket{}, err
	}
	return ticketAmount * bucket.Percent / 100.0, bucket, nil
}
