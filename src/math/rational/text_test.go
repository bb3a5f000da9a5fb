package rational

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		in  Rational64
		out string
	}{
		{r64(10, 3), "10/3"},
		{r64(-4, 8), "-1/2"},
		{r64(0, 5), "0/1"},
		{r64(math.MinInt64, 1), "-9223372036854775808/1"},
		{r64(1, math.MaxInt64), "1/9223372036854775807"},
	} {
		t.Run(tc.out, func(t *testing.T) {
			require.Equal(t, tc.out, tc.in.String())
			require.Equal(t, tc.out, fmt.Sprintf("%v", tc.in))
			require.Equal(t, tc.out, fmt.Sprint(tc.in))
		})
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out Rational64
	}{
		{"10/3", r64(10, 3)},
		{"-4/8", r64(-1, 2)},
		{"2/-4", r64(-1, 2)},
		{"+3/6", r64(1, 2)},
		{"0/9", r64(0, 1)},
		{"-9223372036854775808/1", r64(math.MinInt64, 1)},
		{"9223372036854775807/9223372036854775807", r64(1, 1)},
	} {
		t.Run(tc.in, func(t *testing.T) {
			r, err := Parse[int64](tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.out, r)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		err error
	}{
		{"", ErrSyntax},
		{"12", ErrSyntax},
		{"1/2/3", ErrSyntax},
		{"a/2", ErrSyntax},
		{"1/b", ErrSyntax},
		{"/2", ErrSyntax},
		{"1/", ErrSyntax},
		{"1 /2", ErrSyntax},
		{"1.5/2", ErrSyntax},
		{"1/0", ErrDivideByZero},
		{"0/0", ErrDivideByZero},
		{"9223372036854775808/1", ErrRange},
		{"1/-9223372036854775808", ErrRange},
	} {
		t.Run(tc.in, func(t *testing.T) {
			_, err := Parse[int64](tc.in)
			require.ErrorIs(t, err, tc.err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, "Parse", perr.Func)
			require.Equal(t, tc.in, perr.Input)
		})
	}
}

func TestParseWidth(t *testing.T) {
	r, err := Parse[int8]("-128/96")
	require.NoError(t, err)
	requireRational(t, r, -4, 3)

	_, err = Parse[int8]("200/1")
	require.ErrorIs(t, err, ErrRange)

	_, err = Parse[int32]("1/3000000000")
	require.ErrorIs(t, err, ErrRange)

	n, err := Parse[int]("-6/4")
	require.NoError(t, err)
	requireRational(t, n, -3, 2)
}

func TestParseError(t *testing.T) {
	_, err := Parse[int64]("1/0")
	require.EqualError(t, err, `rational.Parse: parsing "1/0": division by zero`)
}

func TestTextRoundTrip(t *testing.T) {
	for _, pair := range [][2]int64{
		{10, 3}, {-4, 8}, {6, -9}, {0, -3}, {math.MinInt64, 3}, {math.MaxInt64, -1},
		{123456789, 1000000}, {-1, math.MaxInt64},
	} {
		r := r64(pair[0], pair[1])
		back, err := Parse[int64](r.String())
		require.NoError(t, err)
		require.Equal(t, r, back)

		raw, err := FromRaw(pair[0], pair[1]).Reduced()
		require.NoError(t, err)
		require.Equal(t, raw, back)
	}
}

func TestMarshalText(t *testing.T) {
	r := r64(-1, 2)
	text, err := r.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-1/2", string(text))

	var back Rational64
	require.NoError(t, back.UnmarshalText(text))
	require.Equal(t, r, back)

	err = back.UnmarshalText([]byte("1/0"))
	require.ErrorIs(t, err, ErrDivideByZero)
	require.Equal(t, r, back)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "UnmarshalText", perr.Func)
}

type encoded struct {
	Ratio Rational64 `json:"ratio" yaml:"ratio"`
	Scale Rational32 `json:"scale" yaml:"scale"`
}

func TestMarshalJSON(t *testing.T) {
	v := encoded{Ratio: r64(-1, 2), Scale: rat[int32](9, 5)}

	out, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, `{"ratio":"-1/2","scale":"9/5"}`, string(out))

	var back encoded
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, v, back)

	require.Error(t, json.Unmarshal([]byte(`{"ratio":"1/0"}`), &back))
	require.Error(t, json.Unmarshal([]byte(`{"ratio":12}`), &back))
}

func TestMarshalXML(t *testing.T) {
	type Encoded struct {
		Num Rational64
	}
	v := Encoded{Num: r64(22, 7)}

	out, err := xml.Marshal(&v)
	require.NoError(t, err)
	require.Equal(t, "<Encoded><Num>22/7</Num></Encoded>", string(out))

	var back Encoded
	require.NoError(t, xml.Unmarshal(out, &back))
	require.Equal(t, v, back)
}

func TestMarshalYAML(t *testing.T) {
	v := encoded{Ratio: r64(3, 4), Scale: rat[int32](-9, 5)}

	out, err := yaml.Marshal(&v)
	require.NoError(t, err)
	require.Contains(t, string(out), "3/4")
	require.Contains(t, string(out), "9/5")

	var back encoded
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, v, back)

	require.Error(t, yaml.Unmarshal([]byte("ratio: 1/0\n"), &back))
}

func TestLit(t *testing.T) {
	requireRational(t, Lit(7), 7, 1)
	requireRational(t, Lit(0), 0, 1)

	half := Must(Lit(1).Div(Lit(2)))
	requireRational(t, half, 1, 2)

	require.Panics(t, func() { Lit(math.MaxUint64) })
}
