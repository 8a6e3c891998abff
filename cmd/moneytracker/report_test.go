package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moneytracker/internal/cli"
)

func TestReportCmd(t *testing.T) {
	cmd := reportCmd()
	assert.NotNil(t, cmd)

	names := subcommandNames(cmd)
	assert.Contains(t, names, "general")
	assert.Contains(t, names, "categories")
}

func TestBalanceLabel(t *testing.T) {
	assert.Contains(t, balanceLabel(110), cli.FormatCurrency(110))
	assert.Contains(t, balanceLabel(-25.5), cli.FormatCurrency(-25.5))
	assert.Contains(t, balanceLabel(0), cli.FormatCurrency(0))
}
