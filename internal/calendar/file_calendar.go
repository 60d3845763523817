package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/username/cwver/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar using a local text file
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[dateutil.Date]*DayInfo
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[dateutil.Date]*DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	if err := fc.LoadReader(file); err != nil {
		return err
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.data)))

	return nil
}

// LoadReader parses calendar entries from r and merges them into the calendar.
//
// Format: YYYY-MM-DD type [note]
// Example: 2025-01-01 holiday New Year
//
// Blank lines and lines starting with '#' are skipped. Malformed lines are
// logged and skipped.
func (fc *FileCalendar) LoadReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format", zap.Int("line", lineNo), zap.String("text", line))
			continue
		}

		date, err := dateutil.ParseDate(parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.Int("line", lineNo), zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		dayType, err := ParseDayType(parts[1])
		if err != nil {
			fc.logger.Warn("Unknown day type", zap.Int("line", lineNo), zap.String("type", parts[1]))
			continue
		}

		if prev, ok := fc.data[date]; ok {
			fc.logger.Debug("Overriding calendar entry",
				zap.Stringer("date", date),
				zap.Stringer("previous", prev.Type),
				zap.Stringer("type", dayType))
		}

		fc.data[date] = &DayInfo{
			Date: date,
			Type: dayType,
			Note: strings.Join(parts[2:], " "),
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	return nil
}

// GetDayInfo returns the entry for a specific day
func (fc *FileCalendar) GetDayInfo(date dateutil.Date) (*DayInfo, bool) {
	info, ok := fc.data[date]
	return info, ok
}

// Len returns the number of loaded day entries
func (fc *FileCalendar) Len() int {
	return len(fc.data)
}
