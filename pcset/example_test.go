package pcset_test

import (
	"fmt"

	"github.com/katalvlaran/harmonics/pcset"
	"github.com/katalvlaran/harmonics/pitch"
)

// ExampleNormalForm shows the canonical forms of a C major triad.
func ExampleNormalForm() {
	cMajor := pcset.MustNew(pitch.C, pitch.E, pitch.G)

	fmt.Println("normal order:", pcset.NormalOrder(cMajor))
	fmt.Println("normal form: ", pcset.NormalForm(cMajor))
	fmt.Println("prime form:  ", pcset.PrimeForm(cMajor))
	fmt.Println("vector:      ", pcset.IntervalVectorOf(cMajor))
	// Output:
	// normal order: [E G C]
	// normal form:  {0,3,8}
	// prime form:   {0,3,7}
	// vector:       [0 0 1 1 1 0]
}

// ExampleSymmetries detects the threefold symmetry of the augmented triad.
func ExampleSymmetries() {
	aug := pcset.MustNew(pitch.C, pitch.E, pitch.GSharp)
	sym := pcset.Symmetries(aug)

	fmt.Println("Tn:", sym.Transpositional)
	fmt.Println("TnI:", sym.Inversional)
	// Output:
	// Tn: [0 4 8]
	// TnI: [0 4 8]
}

// ExampleSupersetsWithin lists the diatonic four-note extensions of C major.
func ExampleSupersetsWithin() {
	cMajor := pcset.MustNew(pitch.C, pitch.E, pitch.G)
	scale := pcset.MustNew(pitch.C, pitch.D, pitch.E, pitch.F, pitch.G, pitch.A, pitch.B)

	sups, err := pcset.SupersetsWithin(cMajor, scale, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range sups {
		fmt.Println(s)
	}
	// Output:
	// {0,2,4,7}
	// {0,4,5,7}
	// {0,4,7,9}
	// {0,4,7,11}
}
