package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engagic/engagic-sub004/pkg/config"
)

func TestExitCodeMapping(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitError, exitCode(errors.New("db unreachable")))
	assert.Equal(t, exitError, exitCode(&usageError{msg: "unknown city"}))
	assert.Equal(t, exitError, exitCode(fmt.Errorf("wrapped: %w", &usageError{msg: "bad arg"})))
	assert.Equal(t, exitPartial, exitCode(&partialError{failed: 1, total: 3}))
	assert.Equal(t, exitPartial, exitCode(fmt.Errorf("sync: %w", &partialError{failed: 2, total: 2})))
	assert.Equal(t, exitInterrupt, exitCode(errInterrupted))
	assert.Equal(t, exitInterrupt, exitCode(context.Canceled))
}

func TestExpandBananas(t *testing.T) {
	listPath := filepath.Join(t.TempDir(), "cities.txt")
	require.NoError(t, os.WriteFile(listPath, []byte(
		"# bay area\npaloaltoCA\noaklandCA\n\nnashvilleTN\n"), 0o644))

	out, err := expandBananas([]string{"seattleWA", "@" + listPath})
	require.NoError(t, err)
	assert.Equal(t, []string{"seattleWA", "paloaltoCA", "oaklandCA", "nashvilleTN"}, out)

	// Bare arguments pass through untouched.
	out, err = expandBananas([]string{"paloaltoCA"})
	require.NoError(t, err)
	assert.Equal(t, []string{"paloaltoCA"}, out)

	_, err = expandBananas([]string{"@/nonexistent/cities.txt"})
	var usageErr *usageError
	require.ErrorAs(t, err, &usageErr)
}

func TestSelectCities(t *testing.T) {
	registry := []config.CityConfig{
		{Banana: "paloaltoCA", Vendor: "primegov", Status: "active"},
		{Banana: "oaklandCA", Vendor: "granicus", Status: "active"},
	}

	selected, err := selectCities(registry, []string{"oaklandCA"})
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "oaklandCA", selected[0].Banana)

	_, err = selectCities(registry, []string{"gothamNJ"})
	var usageErr *usageError
	require.ErrorAs(t, err, &usageErr)
}

func TestPartialErrorMessage(t *testing.T) {
	err := &partialError{failed: 2, total: 5}
	assert.Equal(t, "2 of 5 cities failed to sync", err.Error())
}
