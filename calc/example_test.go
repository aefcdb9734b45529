package calc_test

import (
	"context"
	"fmt"

	"github.com/ardnew/unitcalc/calc"
)

func ExampleEvaluate() {
	v, err := calc.Evaluate(context.Background(), nil, "( 2 km + 500 m ) / 10 min")
	if err != nil {
		fmt.Println("Error:", err)

		return
	}

	fmt.Println(v)
	// Output: 4.166666666666667 m/s
}

func ExampleSession() {
	s := calc.NewSession()

	for _, line := range []string{
		"v = 5 m/s",
		"t = 2 s",
		"v * t",
		"v + t",
		"exit",
	} {
		out, err := s.Execute(context.Background(), line)
		if err != nil {
			fmt.Println("Error:", err)

			continue
		}

		if out.Kind == calc.OutcomeExit {
			break
		}

		fmt.Println(out)
	}
	// Output:
	// v = 5 m/s
	// t = 2 s
	// 10 m
	// Error: incompatible units: cannot add m/s and s
}
