package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/synhi/position"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		line int
		col  int
		want position.Position
	}{
		"zero values": {
			line: 0,
			col:  0,
			want: position.Position{Line: 0, Col: 0},
		},
		"positive values": {
			line: 5,
			col:  10,
			want: position.Position{Line: 5, Col: 10},
		},
		"large values": {
			line: 10000,
			col:  500,
			want: position.Position{Line: 10000, Col: 500},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := position.New(tc.line, tc.col)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPosition_String(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		pos  position.Position
		want string
	}{
		"zero position": {
			pos:  position.New(0, 0),
			want: "1:1",
		},
		"first line tenth column": {
			pos:  position.New(0, 9),
			want: "1:10",
		},
		"line 5 col 15 (0-indexed)": {
			pos:  position.New(4, 14),
			want: "5:15",
		},
		"large values": {
			pos:  position.New(999, 499),
			want: "1000:500",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := tc.pos.String()
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFromOffset(t *testing.T) {
	t.Parallel()

	content := "line0\nline1\nline2\n\nline4"

	tcs := map[string]struct {
		offset int
		want   position.Position
	}{
		"start of document": {
			offset: 0,
			want:   position.New(0, 0),
		},
		"mid first line": {
			offset: 3,
			want:   position.New(0, 3),
		},
		"start of second line": {
			offset: 6,
			want:   position.New(1, 0),
		},
		"mid second line": {
			offset: 9,
			want:   position.New(1, 3),
		},
		"empty line": {
			offset: 18,
			want:   position.New(3, 0),
		},
		"last line": {
			offset: 19,
			want:   position.New(4, 0),
		},
		"negative offset clamps to start": {
			offset: -5,
			want:   position.New(0, 0),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := position.FromOffset(content, tc.offset)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPosition_Offset(t *testing.T) {
	t.Parallel()

	content := "line0\nline1\nline2"

	tcs := map[string]struct {
		pos    position.Position
		want   int
		wantOK bool
	}{
		"start of document": {
			pos:    position.New(0, 0),
			want:   0,
			wantOK: true,
		},
		"start of second line": {
			pos:    position.New(1, 0),
			want:   6,
			wantOK: true,
		},
		"mid third line": {
			pos:    position.New(2, 3),
			want:   15,
			wantOK: true,
		},
		"negative line is out of range": {
			pos:    position.New(-1, 0),
			wantOK: false,
		},
		"line past end is out of range": {
			pos:    position.New(10, 0),
			wantOK: false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := tc.pos.Offset(content)
			assert.Equal(t, tc.wantOK, ok)

			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestFromOffset_RoundTripsWithOffset(t *testing.T) {
	t.Parallel()

	content := "alpha\nbeta\ngamma\ndelta"

	for offset := 0; offset < len(content); offset++ {
		pos := position.FromOffset(content, offset)

		got, ok := pos.Offset(content)
		assert.True(t, ok, "offset %d -> %v should resolve back", offset, pos)
		assert.Equal(t, offset, got, "offset %d round-tripped to %d via %v", offset, got, pos)
	}
}
