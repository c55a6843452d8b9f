package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardPolicy = `{"0-12h": "100% Refund", "12-24h": "50% Refund", ">24h": "No Refund"}`

// parsedPolicy parses a policy document or fails the test.
func parsedPolicy(t *testing.T, raw string) *CancellationPolicy {
	t.Helper()
	p, err := ParseCancellationPolicy([]byte(raw))
	require.NoError(t, err)
	return p
}

// TestParseCancellationPolicy_Valid verifies a standard three-bucket policy
// parses into ordered buckets.
func TestParseCancellationPolicy_Valid(t *testing.T) {
	p := parsedPolicy(t, standardPolicy)

	buckets := p.Buckets()
	require.Len(t, buckets, 3)
	assert.Equal(t, "0-12h", buckets[0].Label)
	assert.Equal(t, 100.0, buckets[0].Percent)
	assert.Equal(t, "12-24h", buckets[1].Label)
	assert.Equal(t, 50.0, buckets[1].Percent)
	assert.Equal(t, ">24h", buckets[2].Label)
	assert.Equal(t, 0.0, buckets[2].Percent)
	assert.Nil(t, buckets[2].UpperHours, "catch-all bucket has no upper bound")
}

// TestParseCancellationPolicy_EmptyDocument verifies an empty document is rejected.
func TestParseCancellationPolicy_EmptyDocument(t *testing.T) {
	p, err := ParseCancellationPolicy(nil)

	assert.Nil(t, p)
	var resErr *PolicyResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, resErr.Reason, "empty")
}

// TestParseCancellationPolicy_InvalidJSON verifies malformed JSON is rejected.
func TestParseCancellationPolicy_InvalidJSON(t *testing.T) {
	p, err := ParseCancellationPolicy([]byte(`{"0-12h": `))

	assert.Nil(t, p)
	var resErr *PolicyResolutionError
	assert.ErrorAs(t, err, &resErr)
}

// TestParseCancellationPolicy_UnrecognizedLabel verifies unknown bucket labels
// are rejected rather than ignored.
func TestParseCancellationPolicy_UnrecognizedLabel(t *testing.T) {
	p, err := ParseCancellationPolicy([]byte(`{"sometimes": "50% Refund"}`))

	assert.Nil(t, p)
	var resErr *PolicyResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, resErr.Reason, "unrecognized bucket label")
}

// TestParseCancellationPolicy_UnparseableValue verifies refund values that are
// neither a percentage nor "No Refund" are rejected.
func TestParseCancellationPolicy_UnparseableValue(t *testing.T) {
	p, err := ParseCancellationPolicy([]byte(`{"0-12h": "full refund"}`))

	assert.Nil(t, p)
	var resErr *PolicyResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, resErr.Reason, "unparseable refund value")
}

// TestParseCancellationPolicy_PercentOver100 verifies percentages above 100
// are rejected.
func TestParseCancellationPolicy_PercentOver100(t *testing.T) {
	p, err := ParseCancellationPolicy([]byte(`{"0-12h": "120% Refund"}`))

	assert.Nil(t, p)
	var resErr *PolicyResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, resErr.Reason, "exceeds 100")
}

// TestParseCancellationPolicy_InvertedRange verifies an empty or inverted
// range is rejected.
func TestParseCancellationPolicy_InvertedRange(t *testing.T) {
	p, err := ParseCancellationPolicy([]byte(`{"24-12h": "50% Refund"}`))

	assert.Nil(t, p)
	var resErr *PolicyResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, resErr.Reason, "non-positive range")
}

// TestResolve_WithinFirstBucket verifies an elapsed time inside the first
// range resolves to it.
func TestResolve_WithinFirstBucket(t *testing.T) {
	p := parsedPolicy(t, standardPolicy)

	bucket, err := p.Resolve(11)

	require.NoError(t, err)
	assert.Equal(t, "0-12h", bucket.Label)
	assert.Equal(t, 100.0, bucket.Percent)
}

// TestResolve_BoundaryBelongsToUpperBucket verifies the bucket boundary is
// exclusive on the upper bound: exactly 12 hours falls into the 12-24h range.
func TestResolve_BoundaryBelongsToUpperBucket(t *testing.T) {
	p := parsedPolicy(t, standardPolicy)

	bucket, err := p.Resolve(12)

	require.NoError(t, err)
	assert.Equal(t, "12-24h", bucket.Label)
	assert.Equal(t, 50.0, bucket.Percent)
}

// TestResolve_CatchAll verifies elapsed times past the last range hit the
// open-ended bucket.
func TestResolve_CatchAll(t *testing.T) {
	p := parsedPolicy(t, standardPolicy)

	bucket, err := p.Resolve(25)

	require.NoError(t, err)
	assert.Equal(t, ">24h", bucket.Label)
	assert.Equal(t, 0.0, bucket.Percent)
}

// TestResolve_CatchAllAtBoundary verifies the catch-all also claims exactly
// its own lower bound when no closed range covers it.
func TestResolve_CatchAllAtBoundary(t *testing.T) {
	p := parsedPolicy(t, `{"0-12h": "100% Refund", ">24h": "No Refund"}`)

	bucket, err := p.Resolve(24)

	require.NoError(t, err)
	assert.Equal(t, ">24h", bucket.Label)
}

// TestResolve_GapBetweenBuckets verifies a gap no bucket covers produces an
// error instead of defaulting to any refund percentage.
func TestResolve_GapBetweenBuckets(t *testing.T) {
	p := parsedPolicy(t, `{"0-12h": "100% Refund", "24-48h": "25% Refund"}`)

	_, err := p.Resolve(18)

	var resErr *PolicyResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, resErr.Reason, "no bucket covers")
	assert.Equal(t, 18.0, resErr.ElapsedHours)
}

// TestResolve_NegativeElapsed verifies negative elapsed times are rejected.
func TestResolve_NegativeElapsed(t *testing.T) {
	p := parsedPolicy(t, standardPolicy)

	_, err := p.Resolve(-1)

	var resErr *PolicyResolutionError
	assert.ErrorAs(t, err, &resErr)
}

// TestRefundAmount_AppliesPercent verifies the refund amount applies the
// resolved bucket percentage to the ticket amount.
func TestRefundAmount_AppliesPercent(t *testing.T) {
	p := parsedPolicy(t, standardPolicy)

	amount, bucket, err := p.RefundAmount(850, 13)

	require.NoError(t, err)
	assert.Equal(t, "12-24h", bucket.Label)
	assert.InDelta(t, 425.0, amount, 0.001)
}

// TestRefundAmount_NoRefund verifies the catch-all yields a zero amount.
func TestRefundAmount_NoRefund(t *testing.T) {
	p := parsedPolicy(t, standardPolicy)

	amount, _, err := p.RefundAmount(850, 30)

	require.NoError(t, err)
	assert.Equal(t, 0.0, amount)
}
