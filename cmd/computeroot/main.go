// computeroot reports whether a candidate modulus is prime and, if so,
// prints a primitive root of its multiplicative group.
package main

import (
	"flag"
	"fmt"
	"log"

	"modarith/modulus"
)

func main() {
	m := flag.Uint64("m", 65537, "candidate modulus")
	flag.Parse()

	if *m == 0 {
		log.Fatalf("computeroot: modulus must be positive")
	}

	s := modulus.NewStatic(*m)
	if !s.IsPrime() {
		fmt.Printf("%d is not a prime\n", *m)
		return
	}
	fmt.Printf("%d is a prime\n", *m)
	fmt.Printf("having a primitive root %d\n", s.PrimitiveRoot())
}
