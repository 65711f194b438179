package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/ykarpenko/sessionkeeper/internal/common"
)

// Whoami prints the locally mirrored user record, if any.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.coordinator.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			printlnFn("Not logged in")
			return nil
		}
		return err
	}

	return a.printRecord(user)
}

// Show prompts for an id and fetches the corresponding record from the
// profile store.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.coordinator.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No user with id", id)
			return nil
		}
		return err
	}

	return a.printRecord(user)
}

func (a *App) printRecord(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	printlnFn(string(out))
	return nil
}
