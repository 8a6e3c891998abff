package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeopleCmd(t *testing.T) {
	cmd := peopleCmd()
	assert.NotNil(t, cmd)

	names := subcommandNames(cmd)
	for _, want := range []string{"list", "get", "add", "update", "delete"} {
		assert.Contains(t, names, want, "%s subcommand should exist", want)
	}
}

func TestAddPersonCmdFlags(t *testing.T) {
	cmd := addPersonCmd()

	flag := cmd.Flag("name")
	require.NotNil(t, flag, "name flag should exist")
	assert.Contains(t, flag.Usage, "required")

	flag = cmd.Flag("birth-date")
	require.NotNil(t, flag, "birth-date flag should exist")
	assert.Contains(t, flag.Usage, "YYYY-MM-DD")
}

func TestUpdatePersonCmdFlags(t *testing.T) {
	cmd := updatePersonCmd()

	assert.NotNil(t, cmd.Flag("name"))
	assert.NotNil(t, cmd.Flag("birth-date"))

	partial := cmd.Flag("partial")
	require.NotNil(t, partial, "partial flag should exist")
	assert.Equal(t, "false", partial.DefValue)
}

func TestValidatePersonInput(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		person    string
		birthDate string
		wantOK    bool
		wantField string
	}{
		{
			name:      "valid input",
			person:    "Maria Silva",
			birthDate: "1990-03-20",
			wantOK:    true,
		},
		{
			name:      "empty name",
			person:    "",
			birthDate: "1990-03-20",
			wantOK:    false,
			wantField: "name",
		},
		{
			name:      "missing birth date",
			person:    "Maria Silva",
			birthDate: "",
			wantOK:    false,
			wantField: "birthDate",
		},
		{
			name:      "unparseable birth date",
			person:    "Maria Silva",
			birthDate: "20/03/1990",
			wantOK:    false,
			wantField: "birthDate",
		},
		{
			name:      "future birth date",
			person:    "Maria Silva",
			birthDate: "2030-01-01",
			wantOK:    false,
			wantField: "birthDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			birth, errs := validatePersonInput(tt.person, tt.birthDate, now)

			if tt.wantOK {
				assert.True(t, errs.OK())
				assert.False(t, birth.IsZero())
				return
			}
			assert.False(t, errs.OK())
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

// subcommandNames collects the names of a command's direct subcommands.
func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	return names
}
