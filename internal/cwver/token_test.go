package cwver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/cwver/pkg/dateutil"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantErr  error
	}{
		{"Version", "21w01.1", KindVersion, nil},
		{"Date", "2021-02-06", KindDate, nil},
		{"Malformed version", "21w1.1", 0, ErrMalformed},
		{"Version out of range", "21w01.8", 0, ErrOutOfRange},
		{"Malformed date", "2021-2-6", 0, ErrMalformed},
		{"Impossible date", "2021-02-30", 0, ErrMalformed},
		{"Neither notation", "20210206", 0, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := ParseToken(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, tok.Kind)
			assert.Equal(t, tt.input, tok.Raw)
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{"21w01.1", "2021-01-04", nil},
		{"2021-02-06", "21w05.6", nil},
		{"2022-01-02", "21w52.7", nil},
		{"21w53.1", "", ErrInvalidWeek},
		{"1999-06-01", "", ErrYearOutOfCentury},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, err := ParseToken(tt.input)
			require.NoError(t, err)

			got, err := DefaultConverter.Convert(tok)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDate(t *testing.T) {
	want := dateutil.MustDate(2021, time.January, 21)

	for _, s := range []string{"21w03.4", "2021-01-21"} {
		tok, err := ParseToken(s)
		require.NoError(t, err)

		got, err := DefaultConverter.ResolveDate(tok)
		require.NoError(t, err)
		assert.Equal(t, want, got, s)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "cwver", KindVersion.String())
	assert.Equal(t, "date", KindDate.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
