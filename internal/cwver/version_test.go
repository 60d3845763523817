package cwver

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/cwver/pkg/dateutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr error
	}{
		{"Regular", "21w01.2", Version{21, 1, 2}, nil},
		{"Upper bound", "99w53.7", Version{99, 53, 7}, nil},
		{"Lower bound", "00w01.1", Version{0, 1, 1}, nil},
		{"Single-digit week", "21w1.0", Version{}, ErrMalformed},
		{"Trailing garbage", "21w01.1x", Version{}, ErrMalformed},
		{"Leading garbage", "v21w01.1", Version{}, ErrMalformed},
		{"Two-digit weekday", "21w01.11", Version{}, ErrMalformed},
		{"Uppercase marker", "21W01.1", Version{}, ErrMalformed},
		{"Empty", "", Version{}, ErrMalformed},
		{"Week zero", "21w00.1", Version{}, ErrOutOfRange},
		{"Week 54", "21w54.1", Version{}, ErrOutOfRange},
		{"Weekday zero", "21w52.0", Version{}, ErrOutOfRange},
		{"Weekday eight", "21w01.8", Version{}, ErrOutOfRange},
		{"Week 53 passes lexical check", "21w53.1", Version{21, 53, 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var pe *ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, tt.input, pe.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for yy := 0; yy <= 99; yy++ {
		for week := 1; week <= 53; week++ {
			for wd := 1; wd <= 7; wd++ {
				s := fmt.Sprintf("%02dw%02d.%d", yy, week, wd)
				v, err := Parse(s)
				require.NoError(t, err, s)
				require.Equal(t, s, Format(v))
			}
		}
	}
}

func TestToDate(t *testing.T) {
	tests := []struct {
		input   string
		want    dateutil.Date
		wantErr error
	}{
		{"21w01.1", dateutil.MustDate(2021, time.January, 4), nil},
		{"21w10.7", dateutil.MustDate(2021, time.March, 14), nil},
		{"21w52.7", dateutil.MustDate(2022, time.January, 2), nil},
		{"20w53.5", dateutil.MustDate(2021, time.January, 1), nil},
		{"21w53.1", dateutil.Date{}, ErrInvalidWeek},
		{"00w01.1", dateutil.MustDate(2000, time.January, 3), nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToDate(MustParse(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToDateRejectsUnvalidatedVersion(t *testing.T) {
	_, err := ToDate(Version{Year: 21, Week: 1, Weekday: 9})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ToDate(Version{Year: 120, Week: 1, Weekday: 1})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFromDate(t *testing.T) {
	tests := []struct {
		input   dateutil.Date
		want    string
		wantErr error
	}{
		{dateutil.MustDate(2021, time.January, 4), "21w01.1", nil},
		{dateutil.MustDate(2021, time.March, 14), "21w10.7", nil},
		{dateutil.MustDate(2022, time.January, 2), "21w52.7", nil},
		{dateutil.MustDate(2021, time.February, 6), "21w05.6", nil},
		{dateutil.MustDate(2099, time.December, 31), "99w53.4", nil},
		// Jan 1 2000 is in ISO week 52 of 1999.
		{dateutil.MustDate(2000, time.January, 1), "", ErrYearOutOfCentury},
		{dateutil.MustDate(1999, time.June, 1), "", ErrYearOutOfCentury},
		{dateutil.MustDate(2100, time.June, 1), "", ErrYearOutOfCentury},
	}

	for _, tt := range tests {
		t.Run(tt.input.String(), func(t *testing.T) {
			got, err := FromDate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.input.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestConverterWithOtherCentury(t *testing.T) {
	conv := NewConverter(FixedCentury{Base: 1900})

	d, err := conv.ToDate(MustParse("99w52.5"))
	require.NoError(t, err)
	assert.Equal(t, dateutil.MustDate(1999, time.December, 31), d)

	v, err := conv.FromDate(d)
	require.NoError(t, err)
	assert.Equal(t, "99w52.5", v.String())

	_, err = conv.FromDate(dateutil.MustDate(2021, time.January, 4))
	assert.ErrorIs(t, err, ErrYearOutOfCentury)
}

func TestNewConverterDefaultsToCentury2000(t *testing.T) {
	conv := NewConverter(nil)
	assert.Equal(t, Century2000, conv.Century)
}

func TestZeroConverterUsesCentury2000(t *testing.T) {
	var conv Converter

	d, err := conv.ToDate(MustParse("21w01.1"))
	require.NoError(t, err)
	assert.Equal(t, dateutil.MustDate(2021, time.January, 4), d)

	v, err := conv.FromDate(dateutil.MustDate(2021, time.February, 6))
	require.NoError(t, err)
	assert.Equal(t, "21w05.6", v.String())

	_, err = conv.FromDate(dateutil.MustDate(1999, time.June, 1))
	assert.ErrorIs(t, err, ErrYearOutOfCentury)
}

func TestVersionDateRoundTrip(t *testing.T) {
	start := dateutil.MustDate(2000, time.January, 3)
	end := dateutil.MustDate(2099, time.December, 31)

	for d := start; !d.After(end); d = dateutil.AddDays(d, 1) {
		v, err := FromDate(d)
		require.NoError(t, err, d.String())

		back, err := ToDate(v)
		require.NoError(t, err, v.String())
		require.Equal(t, d, back, v.String())
	}
}
