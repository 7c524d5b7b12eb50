package trace

import "testing"

func TestDisabled_RecordIsNoop(t *testing.T) {
	tc := Disabled()
	tc.Record("NAME_COMPARISON", "e1", map[string]any{"score": 1.0})
	if tc.Enabled() {
		t.Fatalf("expected Disabled() to report Enabled()=false")
	}
	if len(tc.Events()) != 0 {
		t.Fatalf("expected Disabled() to never accumulate events")
	}
}

func TestEnabled_RecordsEventsInOrder(t *testing.T) {
	tc := NewEnabled()
	tc.Record("NORMALIZATION", "e1", nil)
	tc.Record("NAME_COMPARISON", "e1", map[string]any{"score": 0.9})

	events := tc.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 recorded events, got %d", len(events))
	}
	if events[0].Phase != "NORMALIZATION" || events[1].Phase != "NAME_COMPARISON" {
		t.Fatalf("expected events recorded in call order, got %+v", events)
	}
}

func TestEnabled_BoundsEventsPerEntity(t *testing.T) {
	tc := NewEnabled()
	for i := 0; i < maxEventsPerEntity+10; i++ {
		tc.Record("PHASE", "e1", nil)
	}
	if len(tc.Events()) != maxEventsPerEntity {
		t.Fatalf("expected events capped at %d per entity, got %d", maxEventsPerEntity, len(tc.Events()))
	}
}
