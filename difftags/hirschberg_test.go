package difftags_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/synhi/difftags"
)

func TestHirschberg_Diff(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		before []string
		after  []string
		want   []difftags.Op
	}{
		"empty_both": {
			before: []string{},
			after:  []string{},
			want:   nil,
		},
		"empty_before": {
			before: []string{},
			after:  []string{"a", "b"},
			want: []difftags.Op{
				{Kind: difftags.OpInsert, Index: 0},
				{Kind: difftags.OpInsert, Index: 1},
			},
		},
		"empty_after": {
			before: []string{"a", "b"},
			after:  []string{},
			want: []difftags.Op{
				{Kind: difftags.OpDelete, Index: 0},
				{Kind: difftags.OpDelete, Index: 1},
			},
		},
		"identical": {
			before: []string{"a", "b", "c"},
			after:  []string{"a", "b", "c"},
			want: []difftags.Op{
				{Kind: difftags.OpEqual, Index: 0},
				{Kind: difftags.OpEqual, Index: 1},
				{Kind: difftags.OpEqual, Index: 2},
			},
		},
		"all_different": {
			before: []string{"a", "b"},
			after:  []string{"c", "d"},
			want: []difftags.Op{
				{Kind: difftags.OpDelete, Index: 0},
				{Kind: difftags.OpDelete, Index: 1},
				{Kind: difftags.OpInsert, Index: 0},
				{Kind: difftags.OpInsert, Index: 1},
			},
		},
		"single_insert_at_start": {
			before: []string{"b", "c"},
			after:  []string{"a", "b", "c"},
			want: []difftags.Op{
				{Kind: difftags.OpInsert, Index: 0},
				{Kind: difftags.OpEqual, Index: 1},
				{Kind: difftags.OpEqual, Index: 2},
			},
		},
		"single_insert_at_end": {
			before: []string{"a", "b"},
			after:  []string{"a", "b", "c"},
			want: []difftags.Op{
				{Kind: difftags.OpEqual, Index: 0},
				{Kind: difftags.OpEqual, Index: 1},
				{Kind: difftags.OpInsert, Index: 2},
			},
		},
		"single_delete_at_start": {
			before: []string{"a", "b", "c"},
			after:  []string{"b", "c"},
			want: []difftags.Op{
				{Kind: difftags.OpDelete, Index: 0},
				{Kind: difftags.OpEqual, Index: 0},
				{Kind: difftags.OpEqual, Index: 1},
			},
		},
		"single_delete_at_end": {
			before: []string{"a", "b", "c"},
			after:  []string{"a", "b"},
			want: []difftags.Op{
				{Kind: difftags.OpEqual, Index: 0},
				{Kind: difftags.OpEqual, Index: 1},
				{Kind: difftags.OpDelete, Index: 2},
			},
		},
		"interleaved_changes": {
			before: []string{"a", "b", "c", "d"},
			after:  []string{"a", "x", "c", "y"},
			want: []difftags.Op{
				{Kind: difftags.OpEqual, Index: 0},
				{Kind: difftags.OpDelete, Index: 1},
				{Kind: difftags.OpInsert, Index: 1},
				{Kind: difftags.OpEqual, Index: 2},
				{Kind: difftags.OpDelete, Index: 3},
				{Kind: difftags.OpInsert, Index: 3},
			},
		},
		"replace_in_middle": {
			before: []string{"a", "b", "c"},
			after:  []string{"a", "x", "c"},
			want: []difftags.Op{
				{Kind: difftags.OpEqual, Index: 0},
				{Kind: difftags.OpDelete, Index: 1},
				{Kind: difftags.OpInsert, Index: 1},
				{Kind: difftags.OpEqual, Index: 2},
			},
		},
		"single_element_before_match": {
			before: []string{"a"},
			after:  []string{"x", "a", "y"},
			want: []difftags.Op{
				{Kind: difftags.OpInsert, Index: 0},
				{Kind: difftags.OpEqual, Index: 1},
				{Kind: difftags.OpInsert, Index: 2},
			},
		},
		"single_element_before_no_match": {
			before: []string{"a"},
			after:  []string{"x", "y", "z"},
			want: []difftags.Op{
				{Kind: difftags.OpDelete, Index: 0},
				{Kind: difftags.OpInsert, Index: 0},
				{Kind: difftags.OpInsert, Index: 1},
				{Kind: difftags.OpInsert, Index: 2},
			},
		},
		"lcs_non_contiguous": {
			before: []string{"a", "x", "b", "y", "c"},
			after:  []string{"a", "b", "c"},
			want: []difftags.Op{
				{Kind: difftags.OpEqual, Index: 0},
				{Kind: difftags.OpDelete, Index: 1},
				{Kind: difftags.OpEqual, Index: 1},
				{Kind: difftags.OpDelete, Index: 3},
				{Kind: difftags.OpEqual, Index: 2},
			},
		},
		"complex_diff": {
			before: []string{"a", "b", "c", "d", "e"},
			after:  []string{"x", "b", "c", "y", "e"},
			want: []difftags.Op{
				{Kind: difftags.OpDelete, Index: 0},
				{Kind: difftags.OpInsert, Index: 0},
				{Kind: difftags.OpEqual, Index: 1},
				{Kind: difftags.OpEqual, Index: 2},
				{Kind: difftags.OpDelete, Index: 3},
				{Kind: difftags.OpInsert, Index: 3},
				{Kind: difftags.OpEqual, Index: 4},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := difftags.NewHirschberg()
			h.Init(len(tc.before), len(tc.after))

			got := h.Diff(tc.before, tc.after)

			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHirschberg_Reuse(t *testing.T) {
	t.Parallel()

	h := difftags.NewHirschberg()

	ops1 := h.Diff([]string{"a", "b"}, []string{"a", "c"})
	assert.Equal(t, []difftags.Op{
		{Kind: difftags.OpEqual, Index: 0},
		{Kind: difftags.OpDelete, Index: 1},
		{Kind: difftags.OpInsert, Index: 1},
	}, ops1)

	ops2 := h.Diff([]string{"x", "y", "z"}, []string{"x", "z"})
	assert.Equal(t, []difftags.Op{
		{Kind: difftags.OpEqual, Index: 0},
		{Kind: difftags.OpDelete, Index: 1},
		{Kind: difftags.OpEqual, Index: 1},
	}, ops2)
}

func TestHirschberg_CustomEqual(t *testing.T) {
	t.Parallel()

	h := difftags.NewHirschberg()
	h.Equal = func(before, after string) bool {
		return strings.TrimSpace(before) == strings.TrimSpace(after)
	}

	ops := h.Diff([]string{"  a  ", "b"}, []string{"a", "b  "})
	assert.Equal(t, []difftags.Op{
		{Kind: difftags.OpEqual, Index: 0},
		{Kind: difftags.OpEqual, Index: 1},
	}, ops)
}

func TestHirschberg_DefaultEqualIsExact(t *testing.T) {
	t.Parallel()

	h := difftags.NewHirschberg()

	ops := h.Diff([]string{"  a  "}, []string{"a"})
	assert.Equal(t, []difftags.Op{
		{Kind: difftags.OpDelete, Index: 0},
		{Kind: difftags.OpInsert, Index: 0},
	}, ops)
}

func TestHirschberg_BufferGrowth(t *testing.T) {
	t.Parallel()

	h := difftags.NewHirschberg()

	before := []string{"a", "b", "c", "d", "e"}
	after := []string{"a", "x", "c", "y", "e"}

	got := h.Diff(before, after)

	want := []difftags.Op{
		{Kind: difftags.OpEqual, Index: 0},
		{Kind: difftags.OpDelete, Index: 1},
		{Kind: difftags.OpInsert, Index: 1},
		{Kind: difftags.OpEqual, Index: 2},
		{Kind: difftags.OpDelete, Index: 3},
		{Kind: difftags.OpInsert, Index: 3},
		{Kind: difftags.OpEqual, Index: 4},
	}

	assert.Equal(t, want, got)
}
