package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/govalues/decint"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// batchOp is a single entry of a batch file:
//
//	ops:
//	  - op: pow
//	    args: ["2", "100"]
type batchOp struct {
	Op   string   `yaml:"op"`
	Args []string `yaml:"args"`
}

type batchFile struct {
	Ops []batchOp `yaml:"ops"`
}

func loadBatch(path string) ([]batchOp, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading batch file")
	}
	var f batchFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrapf(err, "decoding %v", path)
	}
	return f.Ops, nil
}

// runBatch evaluates every operation of the batch file and prints one line
// per successful operation.
// A failed operation does not stop the batch but makes the exit status 1.
func runBatch(calc *decint.Calculator, log *slog.Logger, path string, stdout, stderr io.Writer) int {
	ops, err := loadBatch(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	log.Info("Running batch", "file", path, "ops", len(ops))

	failed := 0
	for i, o := range ops {
		res, err := calc.Eval(o.Op, o.Args...)
		if err != nil {
			fmt.Fprintf(stderr, "Error: op %v: %v\n", i+1, err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%v(%v) = %v\n", o.Op, strings.Join(o.Args, ", "), res)
	}

	if failed > 0 {
		log.Warn("Batch finished with errors", "file", path, "failed", failed)
		return 1
	}
	log.Info("Batch finished", "file", path)
	return 0
}
