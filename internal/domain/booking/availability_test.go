package booking

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestComputeAvailability(t *testing.T) {
	slots := []string{"09:00", "10:00", "11:00"}

	got := ComputeAvailability("2024-06-10", slots, []string{"10:00:00"})

	want := Availability{
		Date:  "2024-06-10",
		All:   []string{"09:00", "10:00", "11:00"},
		Free:  []string{"09:00", "11:00"},
		Taken: []string{"10:00"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("availability mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeAvailabilityPartition(t *testing.T) {
	slots := []string{"18:00", "09:00", "12:00", "10:30", "15:00"}
	reserved := []string{"15:00:00.000", "09:00", "07:00", "garbage", "12:00:00"}

	av := ComputeAvailability("2030-01-02", slots, reserved)

	assert.Equal(t, slots, av.All)
	assert.Len(t, av.Free, len(av.All)-len(av.Taken))

	// free and taken are disjoint, cover all and keep its order
	merged := make([]string, 0, len(slots))
	fi, ti := 0, 0
	for _, s := range av.All {
		switch {
		case fi < len(av.Free) && av.Free[fi] == s:
			fi++
		case ti < len(av.Taken) && av.Taken[ti] == s:
			ti++
		default:
			t.Fatalf("slot %s missing or out of order", s)
		}
		merged = append(merged, s)
	}
	assert.Equal(t, av.All, merged)
	assert.Equal(t, []string{"09:00", "12:00", "15:00"}, av.Taken)
	assert.Equal(t, []string{"18:00", "10:30"}, av.Free)
}

func TestComputeAvailabilityNoSlots(t *testing.T) {
	av := ComputeAvailability("2030-01-02", nil, []string{"09:00"})

	assert.NotNil(t, av.All)
	assert.NotNil(t, av.Free)
	assert.NotNil(t, av.Taken)
	assert.Empty(t, av.All)
	assert.Empty(t, av.Free)
	assert.Empty(t, av.Taken)
}

func TestComputeAvailabilityIsIdempotent(t *testing.T) {
	slots := []string{"09:00", "10:00"}
	reserved := []string{"09:00:00"}

	first := ComputeAvailability("2030-01-02", slots, reserved)
	second := ComputeAvailability("2030-01-02", slots, reserved)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("results differ:\n%s", diff)
	}
	assert.Equal(t, []string{"09:00:00"}, reserved)
}
