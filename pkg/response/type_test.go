package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"calendar-schedule/pkg/response"
)

func TestDate_JSON(t *testing.T) {
	// Late evening in a zone far from UTC must keep its own day.
	loc := time.FixedZone("UTC-10", -10*3600)
	d := response.Date(time.Date(2024, 7, 1, 23, 30, 0, 0, loc))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-07-01"` {
		t.Errorf("unexpected Date JSON: %s", b)
	}

	var back response.Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error unmarshaling Date: %v", err)
	}
	if got := time.Time(back).Format(response.DateFormat); got != "2024-07-01" {
		t.Errorf("expected 2024-07-01, got %s", got)
	}
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	for _, in := range []string{`"2024-13-01"`, `"07/01/2024"`, `20240701`} {
		var d response.Date
		if err := json.Unmarshal([]byte(in), &d); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}
