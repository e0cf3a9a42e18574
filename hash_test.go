package chainmap

import (
	"hash/maphash"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHashFunc(t *testing.T) {
	v := "foo"
	s := maphash.MakeSeed()

	h1 := MakeDefaultHashFunc[string](s)(v)
	h2 := maphash.Comparable(s, v)

	require.Equal(t, h2, h1)
}

func TestStringHashFunc(t *testing.T) {
	f := StringHashFunc()

	require.Equal(t, xxhash.Sum64String("foo"), f("foo"))
	require.Equal(t, f("bar"), f("bar"))
	require.NotEqual(t, f("foo"), f("bar"))
}

func Test_mix(t *testing.T) {
	tests := []struct {
		name  string
		input uint64
		want  uint64
	}{
		{
			name:  "Zero value",
			input: 0,
			want:  0,
		},
		{
			name:  "One",
			input: 1,
			want:  1,
		},
		{
			name:  "Low bits only",
			input: 0x7F,
			want:  0x78,
		},
		{
			name:  "Single mid bit",
			input: 1 << 20,
			want:  0x112113,
		},
		{
			name:  "Single high bit",
			input: 1 << 40,
			want:  0x11211312000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mix(tt.input)

			require.Equalf(t, tt.want, got, "mix(0x%016X) = 0x%016X, want 0x%016X", tt.input, got, tt.want)
		})
	}
}
