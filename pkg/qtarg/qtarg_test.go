package qtarg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"Set %1", []int{1}},
		{"%2 of %1, again %1", []int{1, 2}},
		{"%L1 bytes", []int{1}},
		{"%10 and %9", []int{9, 10}},
		{"100% sure", nil},
		{"%0 is not an escape", nil},
		{"count %n", nil},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Placeholders(tt.in), tt.in)
	}
}

func TestEqual(t *testing.T) {
	require.True(t, Equal("Set %1", "%1を設定"))
	require.True(t, Equal("%1 / %2", "%2 - %1"))
	require.False(t, Equal("Error opening file: %1", "ファイルオープンエラー"))
	require.False(t, Equal("%1", "%1 %2"))
}

func TestArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		args []string
		want string
	}{
		{"single", "Set %1", []string{"Tempo"}, "Set Tempo"},
		{"order by number", "%2 then %1", []string{"a", "b"}, "b then a"},
		{"lowest gets first", "%3 %5", []string{"x", "y"}, "x y"},
		{"repeated", "%1-%1", []string{"z"}, "z-z"},
		{"missing arg kept", "%1 %2", []string{"only"}, "only %2"},
		{"locale flag", "%L1 bytes", []string{"1024"}, "1024 bytes"},
		{"no args", "Set %1", nil, "Set %1"},
		{"percent literal", "50% of %1", []string{"x"}, "50% of x"},
		{"arg containing escape", "%1 %2", []string{"%2", "b"}, "%2 b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Arg(tt.in, tt.args...))
		})
	}
}

func TestCount(t *testing.T) {
	require.True(t, HasCount("%n notes"))
	require.False(t, HasCount("notes"))
	require.Equal(t, "3 notes", Count("%n notes", 3))
	require.Equal(t, "12 notes", Count("%Ln notes", 12))
	require.Equal(t, "notes", Count("notes", 2))
}
