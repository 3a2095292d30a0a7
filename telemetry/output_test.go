package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/foodchain/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager for empty dir, got %v, %v", om, err)
	}
	if err := om.WriteDay(DayStats{}); err != nil {
		t.Errorf("expected nil manager writes to be no-ops, got %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("expected nil manager close to be a no-op, got %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	for day := 1; day <= 3; day++ {
		if err := om.WriteDay(DayStats{Day: day, Living: day * 2}); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkExtinction, Day: 3, Description: "gone"}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteDeaths([]DeathRecord{{Day: 2, ID: "Bab", Cause: "eaten"}, {Day: 2, ID: "Cab", Cause: "starved"}}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "days.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var days []DayStats
	if err := gocsv.UnmarshalFile(f, &days); err != nil {
		t.Fatal(err)
	}
	if len(days) != 3 || days[2].Day != 3 || days[2].Living != 6 {
		t.Errorf("unexpected days %+v", days)
	}

	data, err := os.ReadFile(filepath.Join(dir, "deaths.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "day,id,") {
		t.Errorf("expected a header and two death rows, got %q", lines)
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("expected the written config to load, got %v", err)
	}
	for _, name := range []string{"windows.csv", "perf.csv", "bookmarks.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}
