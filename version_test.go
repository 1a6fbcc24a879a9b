package rolldown

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	data := GetVersion()
	require.NotEmpty(t, data.Version)
	require.NotEmpty(t, data.GitRev)
	require.NotEmpty(t, data.GitBranch)
	require.NotEmpty(t, data.BuildDate)
	require.NotEmpty(t, data.GoVersion)
	require.NotEmpty(t, data.OS)
	require.NotEmpty(t, data.Arch)
	require.Equal(t, "node0001", data.Schema[0])
	require.Contains(t, data.Schema, "rolldown0001")
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	require.Contains(t, buf.String(), "Version:      "+Version)
	require.Contains(t, buf.String(), "DB schema:    node0001,")
}
