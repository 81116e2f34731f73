package main

import (
	"encoding/json"

	"github.com/github/pkcs7/pkcs7"
	"github.com/pkg/errors"
)

func commandParse() error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	format, err := pkcs7.ParseFormat(*informOpt)
	if err != nil {
		return err
	}

	input, err := readInput()
	if err != nil {
		return err
	}

	c, _, err := e.DecodeBytes(input, format)
	if err != nil {
		return errors.Wrap(err, "failed to parse input")
	}

	r, err := e.Parse(c)
	if err != nil {
		return errors.Wrap(err, "failed to describe input")
	}

	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode description")
	}

	return writeOutput(append(out, '\n'))
}
