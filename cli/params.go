package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"pfeifer.dev/stately/params"
)

// paramsAction lists the saved params, prints one, or removes one.
func paramsAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)
	name := cmd.Args().First()
	if name == "" {
		names, err := params.GetParams()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(w, n)
		}
		return nil
	}

	path := params.ParamPath(name)
	exists, err := params.Exists(path)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Errorf("param %q does not exist", name)
	}

	if cmd.Bool("remove") {
		return params.RemoveParam(path)
	}
	data, err := params.GetParam(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return errors.Wrap(err, "could not write param")
}
