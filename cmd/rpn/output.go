package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// result is the outcome of solving one expression.
type result struct {
	Expression string   `yaml:"expression"`
	Postfix    string   `yaml:"postfix,omitempty"`
	Result     *float64 `yaml:"result,omitempty"`
	Error      string   `yaml:"error,omitempty"`

	err error
}

func (r *result) setErr(err error) {
	r.err = err
	r.Error = err.Error()
}

// writeText prints one line per result, formatting values with verb.
func writeText(w io.Writer, results []result, verb string, echo bool) error {
	verb += "\n"
	for _, r := range results {
		if echo {
			if _, err := fmt.Fprintf(w, "%s : ", r.Postfix); err != nil {
				return err
			}
		}
		var err error
		if r.err != nil {
			_, err = fmt.Fprintln(w, r.err)
		} else {
			_, err = fmt.Fprintf(w, verb, *r.Result)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// writeYAML writes the results as a YAML sequence. Postfix forms are included
// only if echo is set.
func writeYAML(w io.Writer, results []result, echo bool) error {
	if !echo {
		rs := make([]result, len(results))
		copy(rs, results)
		for i := range rs {
			rs[i].Postfix = ""
		}
		results = rs
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return errors.Wrap(err, "encoding results")
	}
	return errors.Wrap(enc.Close(), "encoding results")
}
