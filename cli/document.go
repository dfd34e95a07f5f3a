package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"pfeifer.dev/stately/deep"
)

func getAction(ctx context.Context, cmd *cli.Command) error {
	doc, err := readDocument(cmd)
	if err != nil {
		return err
	}
	return writeJSON(cmd, deep.Get(doc, parseKeys(cmd)))
}

func setAction(ctx context.Context, cmd *cli.Command) error {
	doc, err := readDocument(cmd)
	if err != nil {
		return err
	}
	var value any
	if err := json.Unmarshal([]byte(cmd.String("value")), &value); err != nil {
		return errors.Wrap(err, "could not decode value")
	}
	return writeJSON(cmd, deep.Set(doc, parseKeys(cmd), value))
}

func deleteAction(ctx context.Context, cmd *cli.Command) error {
	doc, err := readDocument(cmd)
	if err != nil {
		return err
	}
	out, err := deep.Delete(doc, parseKeys(cmd))
	if err != nil {
		return errors.Wrap(err, "could not delete")
	}
	return writeJSON(cmd, out)
}

func readDocument(cmd *cli.Command) (any, error) {
	var (
		data []byte
		err  error
	)
	if file := cmd.String("file"); file != "" {
		data, err = os.ReadFile(file)
	} else {
		data, err = io.ReadAll(reader(cmd))
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read document")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "could not decode document")
	}
	return doc, nil
}

// parseKeys turns the command arguments into a path. Arguments that are
// non-negative integers become int keys unless --strings is set.
func parseKeys(cmd *cli.Command) deep.Path {
	args := cmd.Args().Slice()
	path := make(deep.Path, 0, len(args))
	for _, arg := range args {
		if !cmd.Bool("strings") {
			if i, err := strconv.Atoi(arg); err == nil && i >= 0 {
				path = append(path, i)
				continue
			}
		}
		path = append(path, arg)
	}
	return path
}

func reader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
