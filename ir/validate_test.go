package ir

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"null", Null(), true},
		{"empty array", FromSlice(nil), true},
		{"empty object", FromKeyVals(nil), true},
		{"homogeneous numbers", FromSlice([]*Node{FromInt(1), FromInt(2)}), true},
		{"int and float share Number", FromSlice([]*Node{FromInt(1), FromFloat(2.5)}), true},
		{"mixed number and string", FromSlice([]*Node{FromInt(1), FromInt(2), FromString("a")}), false},
		{"null mixed with bool", FromSlice([]*Node{Null(), FromBool(true)}), false},
		{"all nulls", FromSlice([]*Node{Null(), Null()}), true},
		{"unique keys", FromKeyVals([]KeyVal{
			{Key: "a", Val: FromInt(1)},
			{Key: "b", Val: FromInt(2)},
		}), true},
		{"duplicate keys", FromKeyVals([]KeyVal{
			{Key: "a", Val: FromInt(1)},
			{Key: "a", Val: FromInt(2)},
		}), false},
		{"sibling objects may share keys", FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
		}), true},
		{"violation deep in tree invalidates root", FromKeyVals([]KeyVal{
			{Key: "ok", Val: FromInt(1)},
			{Key: "bad", Val: FromKeyVals([]KeyVal{
				{Key: "inner", Val: FromSlice([]*Node{FromInt(1), FromString("a")})},
			})},
		}), false},
		{"nested all valid", FromKeyVals([]KeyVal{
			{Key: "xs", Val: FromSlice([]*Node{
				FromKeyVals([]KeyVal{{Key: "v", Val: FromInt(1)}}),
				FromKeyVals([]KeyVal{{Key: "v", Val: FromInt(2)}}),
			})},
		}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.node); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
