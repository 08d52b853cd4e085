package body

import "testing"

func TestCollisionGroupTest(t *testing.T) {
	tests := []struct {
		name string
		a, b CollisionGroup
		want bool
	}{
		{name: "two environment bodies never pair", a: Environment, b: Environment, want: false},
		{name: "environment pairs with default", a: Environment, b: Default, want: true},
		{name: "default pairs with environment (order reversed)", a: Default, b: Environment, want: true},
		{name: "matching identity groups pair", a: CollisionGroup(3), b: CollisionGroup(3), want: true},
		{name: "mismatched groups do not pair", a: CollisionGroup(3), b: CollisionGroup(4), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Test(tt.a, tt.b); got != tt.want {
				t.Errorf("Test(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
