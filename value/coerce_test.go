package value

import "testing"

func TestToNumber(t *testing.T) {
	cases := []struct {
		in      Value
		want    float64
		wantErr bool
	}{
		{Number(5), 5, false},
		{Bool(true), 1, false},
		{Bool(false), 0, false},
		{NullValue, 0, false},
		{String("3.14"), 3.14, false},
		{String("not a number"), 0, true},
		{String("Infinity"), 0, true},
		{Array{}, 0, true},
		{Object{}, 0, true},
	}
	for _, c := range cases {
		got, err := ToNumber(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ToNumber(%v): expected error", c.in)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("ToNumber(%v) = %v, %v; want %v", c.in, got, err, c.want)
		}
	}
}

func TestToBoolean(t *testing.T) {
	cases := []struct {
		in   Value
		want bool
	}{
		{Bool(true), true},
		{Bool(false), false},
		{NullValue, false},
		{Number(0), false},
		{Number(1), true},
		{String(""), false},
		{String("x"), true},
		{Array{}, false},
		{Array{Number(1)}, true},
		{Object{}, false},
		{Object{"a": Number(1)}, true},
	}
	for _, c := range cases {
		if got := ToBoolean(c.in); got != c.want {
			t.Errorf("ToBoolean(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAbstractEqual(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{NullValue, NullValue, true},
		{Number(1), Number(1), true},
		{Number(1), String("1"), false}, // no cross-kind coercion
		{String("true"), String("true"), true},
		{Bool(true), Bool(true), true},
		{Bool(true), Bool(false), false},
	}
	for _, c := range cases {
		if got := AbstractEqual(c.a, c.b); got != c.want {
			t.Errorf("AbstractEqual(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestValueStringForms(t *testing.T) {
	cases := []struct {
		in   Value
		want string
	}{
		{NullValue, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(3.5), "3.5"},
		{String("hi"), "hi"},
		{Array{Number(1)}, "[Array]"},
		{Object{"a": Number(1)}, "[Object]"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
