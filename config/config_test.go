package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	if AppConfig.Timezone != "Europe/Moscow" {
		t.Fatalf("Timezone = %q", AppConfig.Timezone)
	}
	if AppConfig.EventWeekday != 3 {
		t.Fatalf("EventWeekday = %d, want 3 (Wednesday)", AppConfig.EventWeekday)
	}
	if AppConfig.ReminderWeekday != 2 || AppConfig.ReminderHour != 19 {
		t.Fatalf("reminder schedule = day %d hour %d, want Tuesday 19:00",
			AppConfig.ReminderWeekday, AppConfig.ReminderHour)
	}
	if len(AppConfig.Slots) != 6 {
		t.Fatalf("Slots = %v, want six defaults", AppConfig.Slots)
	}
	if AppConfig.Slots[0] != "15:00-15:10" || AppConfig.Slots[5] != "15:50-16:00" {
		t.Fatalf("slot window = %v", AppConfig.Slots)
	}
	if AppConfig.SelectionStore != "memory" {
		t.Fatalf("SelectionStore = %q, want memory", AppConfig.SelectionStore)
	}
	if AppConfig.TelegramMode != "polling" {
		t.Fatalf("TelegramMode = %q, want polling", AppConfig.TelegramMode)
	}
	if AppConfig.CalendarEnabled {
		t.Fatal("CalendarEnabled defaults on; the mirror must be opt-in")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("EVENT_WEEKDAY", "5")
	t.Setenv("SELECTION_STORE", "redis")
	LoadConfig()

	if AppConfig.EventWeekday != 5 {
		t.Fatalf("EventWeekday = %d, want env override 5", AppConfig.EventWeekday)
	}
	if AppConfig.SelectionStore != "redis" {
		t.Fatalf("SelectionStore = %q, want redis", AppConfig.SelectionStore)
	}
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	LoadConfig()
	if !IsProduction() {
		t.Fatal("IsProduction() = false with ENV=production")
	}
}
