package args

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Tokenize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "whitespace only", raw: " \t  ", want: []string{}},
		{name: "surrounding and inner runs", raw: "  a   b  ", want: []string{"a", "b"}},
		{name: "tabs and newlines", raw: "x\ty\n z", want: []string{"x", "y", "z"}},
		{name: "single", raw: "world", want: []string{"world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.raw)
			assert.Equal(t, len(tt.want), a.Count())
			assert.Equal(t, tt.want, a.Tokens())
		})
	}
}

func TestNilArgs(t *testing.T) {
	var a *Args
	assert.Equal(t, 0, a.Count())
	assert.Equal(t, "", a.String())
	assert.Nil(t, a.Tokens())

	_, err := a.Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestGet_OutOfRange(t *testing.T) {
	a := New("one two")

	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	for _, i := range []int{-1, 2, 10} {
		_, err := a.Get(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)
	}
}

func TestTypedAccessors(t *testing.T) {
	a := New("42 -7 3.5 true no 1m30s oops")

	n, err := a.Int(0)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n64, err := a.Int64(1)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), n64)

	f, err := a.Float(2)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, f, 1e-9)

	b, err := a.Bool(3)
	require.NoError(t, err)
	assert.True(t, b)

	d, err := a.Duration(5)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	_, err = a.Int(6)
	assert.ErrorIs(t, err, ErrArgumentParse)

	_, err = a.Bool(4)
	assert.ErrorIs(t, err, ErrArgumentParse)

	_, err = a.Float(6)
	assert.ErrorIs(t, err, ErrArgumentParse)

	_, err = a.Int(7)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestInt_DecimalOnly(t *testing.T) {
	tests := []struct {
		tok     string
		want    int64
		wantErr bool
	}{
		{tok: "010", want: 10},
		{tok: "08", want: 8},
		{tok: "-007", want: -7},
		{tok: "+12", want: 12},
		{tok: "000", want: 0},
		{tok: "-0", want: 0},
		{tok: "0x1F", wantErr: true},
		{tok: "0b11", wantErr: true},
		{tok: "0o17", wantErr: true},
		{tok: "1_000", wantErr: true},
		{tok: "1.0", wantErr: true},
		{tok: "-", wantErr: true},
		{tok: "9223372036854775808", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			a := New(tt.tok)

			n64, err := a.Int64(0)
			n, errInt := a.Int(0)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrArgumentParse)
				assert.ErrorIs(t, errInt, ErrArgumentParse)
				return
			}
			require.NoError(t, err)
			require.NoError(t, errInt)
			assert.Equal(t, tt.want, n64)
			assert.Equal(t, int(tt.want), n)
		})
	}
}

func TestDefaults(t *testing.T) {
	a := New("5 maybe")

	assert.Equal(t, 5, a.IntOr(0, 1))
	assert.Equal(t, 1, a.IntOr(1, 1))
	assert.Equal(t, 1, a.IntOr(9, 1))
	assert.True(t, a.BoolOr(1, true))
	assert.Equal(t, "maybe", a.StringOr(1, "x"))
	assert.Equal(t, "x", a.StringOr(2, "x"))
}

func TestRestAndString(t *testing.T) {
	a := New("  hello   big  world ")

	assert.Equal(t, "hello   big  world", a.String())
	assert.Equal(t, "hello big world", a.Rest(0))
	assert.Equal(t, "big world", a.Rest(1))
	assert.Equal(t, "", a.Rest(3))
	assert.Equal(t, "hello big world", a.Rest(-2))
}
