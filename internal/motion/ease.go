package motion

import (
	"fmt"
	"math"
)

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

func ExpoOut(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Power2Out is the cubic ease-out.
func Power2Out(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// ElasticOut returns an overshooting ease with the given amplitude and
// period.
func ElasticOut(amplitude, period float64) Ease {
	p1 := math.Max(amplitude, 1)
	p2 := period / math.Min(amplitude, 1)
	p3 := p2 / (2 * math.Pi) * math.Asin(1/p1)
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return p1*math.Pow(2, -10*t)*math.Sin((t-p3)*(2*math.Pi/p2)) + 1
	}
}

// ParseEase resolves an ease by name: "linear"/"none", "expo.out",
// "power2.out" or "elastic.out(a, p)".
func ParseEase(name string) (Ease, error) {
	switch name {
	case "", "linear", "none":
		return Linear, nil
	case "expo.out":
		return ExpoOut, nil
	case "power2.out":
		return Power2Out, nil
	case "elastic.out":
		return ElasticOut(1, 0.3), nil
	}
	var a, p float64
	if _, err := fmt.Sscanf(name, "elastic.out(%g, %g)", &a, &p); err == nil && a > 0 && p > 0 {
		return ElasticOut(a, p), nil
	}
	return nil, fmt.Errorf("unknown ease %q", name)
}

// MustEase is ParseEase for names known at compile time.
func MustEase(name string) Ease {
	e, err := ParseEase(name)
	if err != nil {
		panic(err)
	}
	return e
}
