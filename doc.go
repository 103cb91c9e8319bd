// Package gaussnb is a Gaussian Naive Bayes classifier for labeled numeric
// vectors, with a variance smoothing pass for classes whose estimated
// spread is suspiciously narrow.
//
// # Install
//
//	go get github.com/YuminosukeSato/gaussnb
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gaussnb/sklearn/naive_bayes"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{
//	        1.0, 2.0,
//	        1.2, 2.1,
//	        5.0, 6.0,
//	        5.1, 5.9,
//	    })
//	    y := []string{"A", "A", "B", "B"}
//
//	    nb := naive_bayes.NewGaussianNB()
//	    if err := nb.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    label, err := nb.Classify([]float64{1.1, 2.05})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Predicted class:", label) // A
//	}
//
// # Packages
//
//   - sklearn/naive_bayes: GaussianNB estimator and the immutable fitted Model
//   - dataset: whitespace separated record parsing ("1,5" reads as 1.5)
//   - metrics: accuracy and confusion matrix
//   - report: text report and density plots
//   - session: interactive classification loop
//   - config: TOML configuration
//   - core/model: estimator interfaces and fitted state
//   - core/parallel: parallel batch prediction
//   - pkg/errors, pkg/log: error types, warnings and structured logging
//
// The gaussnb command in cmd/gaussnb wires these together:
//
//	gaussnb run --train iris_training.txt --test iris_test.txt
//	gaussnb eval --config gaussnb.toml --log-format json
package gaussnb
