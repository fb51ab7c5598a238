package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.GoogleCalendar.CalendarID = "primary"
	cfg.GoogleCalendar.Timezone = "UTC"
	cfg.Sync.Tag = "#gcal"
	cfg.Sync.DefaultEventDuration = 60
	cfg.Sync.DefaultStartHour = 9
	cfg.Sync.AutoInterval = 5 * time.Minute
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing calendar", mutate: func(c *Config) { c.GoogleCalendar.CalendarID = "" }, wantErr: true},
		{name: "zero duration", mutate: func(c *Config) { c.Sync.DefaultEventDuration = 0 }, wantErr: true},
		{name: "hour out of range", mutate: func(c *Config) { c.Sync.DefaultStartHour = 24 }, wantErr: true},
		{name: "negative interval", mutate: func(c *Config) { c.Sync.AutoInterval = -time.Second }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.GoogleCalendar.Timezone = "Mars/Olympus" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNormalizesTag(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.Tag = "calendar"
	if err := validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sync.Tag != "#calendar" {
		t.Errorf("expected tag #calendar, got %q", cfg.Sync.Tag)
	}
}

func TestReadCalendarIDs(t *testing.T) {
	c := GoogleCalendarConfig{CalendarID: "primary", WorkCalendarID: "work@example.com"}
	if got := c.ReadCalendarIDs(); len(got) != 1 {
		t.Fatalf("work calendar disabled, got %v", got)
	}

	c.EnableWorkCalendar = true
	got := c.ReadCalendarIDs()
	if len(got) != 2 || got[1] != "work@example.com" {
		t.Fatalf("expected primary and work calendars, got %v", got)
	}

	c.WorkCalendarID = "primary"
	if got := c.ReadCalendarIDs(); len(got) != 1 {
		t.Fatalf("duplicate calendar should collapse, got %v", got)
	}
}
