package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/username/cwver/pkg/dateutil"
)

func TestCompositeCalendar_FirstWins(t *testing.T) {
	primary := NewFileCalendar("", nil)
	if err := primary.LoadReader(strings.NewReader("2025-05-09 workday\n")); err != nil {
		t.Fatal(err)
	}
	fallback := NewFileCalendar("", nil)
	if err := fallback.LoadReader(strings.NewReader("2025-05-09 holiday Victory Day\n2025-05-01 holiday\n")); err != nil {
		t.Fatal(err)
	}

	cc := NewCompositeCalendar(nil, primary, fallback)

	info, ok := cc.GetDayInfo(dateutil.MustDate(2025, time.May, 9))
	if !ok || info.Type != DayTypeWorkday {
		t.Errorf("May 9 = %+v, %v, want workday from primary", info, ok)
	}

	info, ok = cc.GetDayInfo(dateutil.MustDate(2025, time.May, 1))
	if !ok || info.Type != DayTypeHoliday {
		t.Errorf("May 1 = %+v, %v, want holiday from fallback", info, ok)
	}

	if _, ok := cc.GetDayInfo(dateutil.MustDate(2025, time.May, 2)); ok {
		t.Error("May 2 should not be known to any calendar")
	}
}

func TestFromFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("2025-12-31 holiday\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("2025-12-31 workday\n2025-12-30 shortened\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cc, err := FromFiles([]string{a, b}, nil)
	if err != nil {
		t.Fatalf("FromFiles() error = %v", err)
	}

	if info, _ := cc.GetDayInfo(dateutil.MustDate(2025, time.December, 31)); info == nil || info.Type != DayTypeHoliday {
		t.Errorf("Dec 31 = %+v, want holiday from first file", info)
	}
	if info, _ := cc.GetDayInfo(dateutil.MustDate(2025, time.December, 30)); info == nil || info.Type != DayTypeShortened {
		t.Errorf("Dec 30 = %+v, want shortened from second file", info)
	}

	if _, err := FromFiles([]string{filepath.Join(dir, "missing.txt")}, nil); err == nil {
		t.Error("FromFiles() expected error for missing file")
	}
}
