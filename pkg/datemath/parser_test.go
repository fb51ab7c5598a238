package datemath_test

import (
	"errors"
	"testing"
	"time"

	"plansync/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Europe/Berlin"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "today", relative: "today", want: startOfBase},
		{name: "tomorrow, mixed case and padding", relative: "  Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "in 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "in 2 weeks", relative: "in  2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "in 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "next monday from wednesday", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "next wednesday is a week out", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "invalid duration", relative: "in a few days", wantErr: true},
		{name: "trailing garbage after duration", relative: "in 3 days please", wantErr: true},
		{name: "unknown weekday", relative: "next funday", wantErr: true},
		{name: "unknown input", relative: "some random day", wantErr: true},
		{name: "empty", relative: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnknownDate) {
					t.Fatalf("Parse() error = %v, want ErrUnknownDate", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}
