// Package pkg provides the core libraries for the porcus pig latin
// transformer.
//
// # Overview
//
// The transform is a pure function pipeline: segment → classify → rotate →
// recase → recombine. The pkg directory is organized along those stages:
//
//  1. [segment] - Lossless word/separator segmentation
//  2. [latin] - Character sets and vowel/consonant classification
//  3. [casing] - Word case detection and rendering
//  4. [piglatin] - The transformer tying the stages together
//  5. [buildinfo], [errors] - Build metadata and CLI error codes
//
// # Quick Start
//
//	import "github.com/matzehuels/porcus/pkg/piglatin"
//
//	t := piglatin.NewDefault()
//	out := t.Transform("Pig latin") // "Igpay atinlay"
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test -run Example     # Examples only
//
// [segment]: https://pkg.go.dev/github.com/matzehuels/porcus/pkg/segment
// [latin]: https://pkg.go.dev/github.com/matzehuels/porcus/pkg/latin
// [casing]: https://pkg.go.dev/github.com/matzehuels/porcus/pkg/casing
// [piglatin]: https://pkg.go.dev/github.com/matzehuels/porcus/pkg/piglatin
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/porcus/pkg/buildinfo
// [errors]: https://pkg.go.dev/github.com/matzehuels/porcus/pkg/errors
package pkg
