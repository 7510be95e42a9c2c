package xg

import (
	"math"
	"testing"
)

func TestExpectedGoalsBaseline(t *testing.T) {
	transform := Default()
	if got := transform.ExpectedGoals(0); got != transform.Constant {
		t.Errorf("ExpectedGoals(0) = %v, want %v", got, transform.Constant)
	}
}

func TestExpectedGoalsIncreasing(t *testing.T) {
	transform := Default()
	previous := transform.ExpectedGoals(-20)
	for d := -19; d <= 20; d++ {
		current := transform.ExpectedGoals(float64(d))
		if current <= previous {
			t.Fatalf("ExpectedGoals not increasing at %d: %v <= %v", d, current, previous)
		}
		previous = current
	}
}

func TestRoundTrip(t *testing.T) {
	transform := Default()
	for _, d := range []float64{-15, -3.5, -1, 0, 0.25, 1, 2, 7, 14} {
		got, err := transform.StrengthDifference(transform.ExpectedGoals(d))
		if err != nil {
			t.Fatalf("StrengthDifference() error = %v", err)
		}
		if math.Abs(got-d) > 1e-9 {
			t.Errorf("round trip of %v = %v", d, got)
		}
	}
}

func TestStrengthDifference(t *testing.T) {
	tests := []struct {
		name    string
		xg      float64
		want    float64
		wantErr bool
	}{
		{
			name: "baseline",
			xg:   1.3,
			want: 0,
		},
		{
			name: "one factor above",
			xg:   1.3 * 1.3,
			want: 1,
		},
		{
			name: "one factor below",
			xg:   1,
			want: -1,
		},
		{
			name:    "zero",
			xg:      0,
			wantErr: true,
		},
		{
			name:    "negative",
			xg:      -0.5,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default().StrengthDifference(tt.xg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("StrengthDifference() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("StrengthDifference() = %v, want %v", got, tt.want)
			}
		})
	}
}
