// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/lvdet/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Config{Level: "debug", Format: "json", Writer: buf})
	require.NoError(t, err)

	logger.Debug("hello")
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "lvdet", entry["name"])
}

func TestNew_LevelFilters(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Config{Level: "warn", Format: "json", Writer: buf})
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")

	require.NotContains(t, buf.String(), "quiet")
	require.Contains(t, buf.String(), "loud")
}

func TestNew_Logfmt(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Config{Format: "logfmt", Writer: buf})
	require.NoError(t, err)

	logger.Info("started")
	line := buf.String()
	require.True(t, strings.Contains(line, "msg=started"), line)
	require.Contains(t, line, "level=info")
}

func TestNew_ConsoleDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Config{Writer: buf})
	require.NoError(t, err)

	logger.Info("ready")
	require.Contains(t, buf.String(), "INFO")
	require.Contains(t, buf.String(), "ready")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Format: "xml"})
	require.True(t, errors.Is(err, logging.ErrUnknownFormat))

	_, err = logging.New(logging.Config{Level: "chatty"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid log level "chatty"`)
}
