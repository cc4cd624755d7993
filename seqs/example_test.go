package seqs_test

import (
	"fmt"
	"slices"

	"seqkit/seqs"
)

func ExampleMap() {
	input := slices.Values([]int{1, 2, 3})

	result := seqs.Map(input, func(v int) int {
		return v * 10
	})

	for v := range result {
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
}

func ExampleRotor() {
	input := slices.Values([]int{1, 2, 3, 4, 5, 6, 7, 8})

	// Alternate a window of two and a window of one, skipping one
	// element after each single.
	spec := seqs.WindowSpec{
		{Size: 2},
		{Size: 1, Gap: 1},
	}

	for w := range seqs.Rotor(input, spec, false) {
		fmt.Println(w)
	}

	// Output:
	// [1 2]
	// [3]
	// [5 6]
	// [7]
}

func ExampleGrep() {
	input := slices.Values([]int{1, 2, 3, 4, 5, 6})

	even := seqs.Grep(input, seqs.Pred(func(v int) bool { return v%2 == 0 }))

	fmt.Println(slices.Collect(even))

	// Output:
	// [2 4 6]
}

func ExampleRoundRobin() {
	merged := seqs.RoundRobin(
		slices.Values([]int{1, 2, 3}),
		slices.Values([]int{4, 5}),
	)

	fmt.Println(slices.Collect(merged))

	// Output:
	// [1 4 2 5 3]
}

func ExampleReduceOp() {
	total, err := seqs.ReduceOp(slices.Values([]int{2, 4, 6, 8}), seqs.SumOp[int]())
	fmt.Println(total, err)

	// An empty sequence falls back to the operator identity.
	total, err = seqs.ReduceOp(slices.Values([]int{}), seqs.SumOp[int]())
	fmt.Println(total, err)

	// Output:
	// 20 <nil>
	// 0 <nil>
}

func ExampleClassify() {
	words := slices.Values([]string{"ant", "bee", "cow", "ape", "bat"})

	byInitial := seqs.Classify(words, func(w string) byte { return w[0] })

	for k, group := range byInitial.All() {
		fmt.Printf("%c: %v\n", k, group)
	}

	// Output:
	// a: [ant ape]
	// b: [bee bat]
	// c: [cow]
}

func ExampleIterate() {
	powers := seqs.Iterate(1, func(v int) int { return v * 2 })

	fmt.Println(slices.Collect(powers.Take(6)))

	// Output:
	// [1 2 4 8 16 32]
}
