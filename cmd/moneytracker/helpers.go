package main

import (
	"errors"
	"fmt"
	"strings"

	"moneytracker/internal/api"
	"moneytracker/internal/cli"
	"moneytracker/internal/common"
	"moneytracker/internal/config"
	"moneytracker/internal/rules"
	"moneytracker/internal/store"
)

// newStore builds the entity store on top of the configured API client.
// One store per command invocation; the remote API owns durable state.
func newStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return store.New(api.New(cfg.API)), nil
}

// printSuccess shows the collection's success message.
func printSuccess(msg string) {
	if msg != "" {
		fmt.Println(cli.SuccessStyle.Render(msg))
	}
}

// fieldErrorsFailure renders every field failure and returns the error
// that blocks the submission.
func fieldErrorsFailure(errs rules.FieldErrors) error {
	for _, line := range strings.Split(errs.Error(), "\n") {
		fmt.Println(cli.ErrorStyle.Render(line))
	}
	return common.ErrValidation
}

// storeFailure prefers the user-facing message the store recorded over
// the raw error chain.
func storeFailure(err error, userMessage string) error {
	if userMessage != "" {
		return common.NewUserError(userMessage, err)
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return common.NewUserError(apiErr.Message, nil)
	}
	return err
}
