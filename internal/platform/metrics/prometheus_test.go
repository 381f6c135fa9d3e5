package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("standings", "stale"))
	RecordCacheLookup("standings", "stale")
	after := testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("standings", "stale"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestRecordCacheSweep_IgnoresZero(t *testing.T) {
	before := testutil.ToFloat64(CacheEntriesSwept.WithLabelValues("teams"))
	RecordCacheSweep("teams", 0)
	RecordCacheSweep("teams", 3)
	after := testutil.ToFloat64(CacheEntriesSwept.WithLabelValues("teams"))
	if after-before != 3 {
		t.Fatalf("expected counter to grow by 3, got %v", after-before)
	}
}

func TestRecordProviderRequest(t *testing.T) {
	before := testutil.ToFloat64(ProviderRequestsTotal.WithLabelValues("standings", "ok"))
	RecordProviderRequest("standings", "ok", 150*time.Millisecond)
	after := testutil.ToFloat64(ProviderRequestsTotal.WithLabelValues("standings", "ok"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}

	RecordRequestsAvailable(7)
	if got := testutil.ToFloat64(ProviderRequestsAvailable); got != 7 {
		t.Fatalf("unexpected requests available gauge: %v", got)
	}
}

func TestRecordPointsResolution(t *testing.T) {
	before := testutil.ToFloat64(PointsResolutionsTotal.WithLabelValues("manual", "true"))
	RecordPointsResolution("manual", true)
	after := testutil.ToFloat64(PointsResolutionsTotal.WithLabelValues("manual", "true"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}
}
