package model

import (
	"testing"
	"time"
)

func TestWeekLabel(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		// 2023-01-01 is a Sunday, so the year starts directly in week 01.
		{"2023-01-01", "2023-W01"},
		{"2023-01-07", "2023-W01"},
		{"2023-01-08", "2023-W02"},
		// 2024 starts on a Monday; days before the first Sunday land in week 00.
		{"2024-01-01", "2024-W00"},
		{"2024-01-06", "2024-W00"},
		{"2024-01-07", "2024-W01"},
		{"2024-12-31", "2024-W52"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			day, err := time.Parse(DateLayout, tt.date)
			if err != nil {
				t.Fatalf("parse %s: %v", tt.date, err)
			}
			if got := WeekLabel(day); got != tt.want {
				t.Errorf("WeekLabel(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestInteractionRecordResolutionTime(t *testing.T) {
	base := Interaction{
		InteractionID: "INT_000001",
		Timestamp:     time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	record := base.Record()
	if record[12] != "" {
		t.Errorf("unresolved interaction should have empty resolution_time_hours, got %q", record[12])
	}

	hours := 24
	base.ResolutionTimeHours = &hours
	record = base.Record()
	if record[12] != "24" {
		t.Errorf("resolution_time_hours = %q, want 24", record[12])
	}

	if got, want := len(record), len(Interaction{}.Header()); got != want {
		t.Errorf("record has %d fields, header has %d", got, want)
	}
}

func TestMappingRecordDates(t *testing.T) {
	mapping := Mapping{CampaignID: "CAMP_001", CustomerID: "CUST_10000"}
	record := mapping.Record()
	for _, i := range []int{3, 5, 7} {
		if record[i] != "" {
			t.Errorf("unreached stage date field %d should be empty, got %q", i, record[i])
		}
	}

	contacted := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mapping.Contacted = true
	mapping.ContactedDate = &contacted
	record = mapping.Record()
	if record[3] != "2026-02-01" {
		t.Errorf("contacted_date = %q, want 2026-02-01", record[3])
	}
}

func TestHeadersMatchRecords(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		record []string
	}{
		{"customer", Customer{}.Header(), Customer{}.Record()},
		{"campaign", Campaign{}.Header(), Campaign{}.Record()},
		{"mapping", Mapping{}.Header(), Mapping{}.Record()},
		{"trend", TrendRecord{}.Header(), TrendRecord{}.Record()},
		{"product", Product{}.Header(), Product{}.Record()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.header) != len(tt.record) {
				t.Errorf("header has %d columns, record has %d", len(tt.header), len(tt.record))
			}
		})
	}
}
