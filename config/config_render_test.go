package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const testEnvPrefix = "UTCR"

type renderCase struct {
	name           string
	files          []string
	env            map[string]string
	expectedMerged string
	expected       string
	expectedError  error
}

func TestConfigRender(t *testing.T) {
	groups := map[string][]renderCase{
		"merge": {
			{
				name:     "two files",
				files:    []string{"Admin=1\n", "BlockTime=2\n"},
				expected: "Admin = 1\nBlockTime = 2\n",
			},
			{
				name:     "later files override earlier ones",
				files:    []string{"Admin=1\n", "Admin=2\nBlockTime=2\n", "Admin=3\nChain=3\n"},
				expected: "Admin = 3\nBlockTime = 2\nChain = 3\n",
			},
			{
				name:          "last value is an unknown var",
				files:         []string{"Admin=1\n", "Admin=2\nBlockTime=2\n", "Admin={{VAR}}\nChain=3\n"},
				expected:      "Admin = {{VAR}}\nBlockTime = 2\nChain = 3\n",
				expectedError: ErrMissingVars,
			},
		},
		"cycles": {
			{
				name:           "three vars",
				files:          []string{"Admin= {{BlockTime}}\n", "BlockTime= {{Chain}}\nChain={{Admin}}\n"},
				expectedMerged: "Admin = {{BlockTime}}\nBlockTime = {{Chain}}\nChain = {{Admin}}\n",
				expected:       "Admin = {{BlockTime}}\nBlockTime = {{Chain}}\nChain = {{Admin}}\n",
				expectedError:  ErrCycleVars,
			},
			{
				name:          "two vars",
				files:         []string{"Admin= {{BlockTime}}\n", "BlockTime= {{Admin}}\n"},
				expected:      "Admin = {{BlockTime}}\nBlockTime = {{Admin}}\n",
				expectedError: ErrCycleVars,
			},
			{
				name:          "self reference",
				files:         []string{"Admin= {{Admin}}\n", ""},
				expected:      "Admin = {{Admin}}\n",
				expectedError: ErrCycleVars,
			},
			{
				name:     "broken by env var on the middle key",
				files:    []string{"Admin= {{BlockTime}}\n", "BlockTime= {{Chain}}\nChain={{Admin}}\n"},
				env:      map[string]string{"UTCR_BlockTime": "4"},
				expected: "Admin = 4\nBlockTime = 4\nChain = 4\n",
			},
			{
				name:     "broken by env var on the first key",
				files:    []string{"Admin= {{BlockTime}}\n", "BlockTime= {{Chain}}\nChain={{Admin}}\n"},
				env:      map[string]string{"UTCR_Admin": "4"},
				expected: "Admin = 4\nBlockTime = 4\nChain = 4\n",
			},
			{
				name:     "broken by env var on the last key",
				files:    []string{"Admin= {{BlockTime}}\n", "BlockTime= {{Chain}}\nChain={{Admin}}\n"},
				env:      map[string]string{"UTCR_Chain": "4"},
				expected: "Admin = 4\nBlockTime = 4\nChain = 4\n",
			},
		},
		"types": {
			{
				name: "int, string and bool vars keep their type",
				files: []string{
					"DisputePeriod={{PERIOD}}\n Name= \"{{NAME}}\"\n Enabled={{ENABLED}}\n",
					"ENABLED=true\nNAME=\"a string\"\nPERIOD=4\nUnresolved={{NOT_DEFINED_VAR}}\n",
				},
				expectedError: ErrMissingVars,
				expected: "DisputePeriod = 4\nENABLED = true\nEnabled = true\nNAME = \"a string\"\n" +
					"Name = \"a string\"\nPERIOD = 4\nUnresolved = {{NOT_DEFINED_VAR}}\n",
			},
			{
				name:     "composed string",
				files:    []string{"PathRWData=\"/tmp\"\n", "DBPath= \"{{PathRWData}}/db\"\n"},
				expected: "DBPath = \"/tmp/db\"\nPathRWData = \"/tmp\"\n",
			},
			{
				name:     "string var set directly",
				files:    []string{"Admin=\"hello\"\n", "BlockTime= \"{{Admin}}\"\n"},
				expected: "Admin = \"hello\"\nBlockTime = \"hello\"\n",
			},
			{
				name:     "string var overridden by env",
				files:    []string{"Admin=\"hello\"\n", "BlockTime=\"{{Admin}}\"\n"},
				env:      map[string]string{"UTCR_Admin": "you"},
				expected: "Admin = \"hello\"\nBlockTime = \"you\"\n",
			},
		},
		"env only": {
			{
				name:     "number",
				files:    []string{"Admin={{Chain}}\n"},
				env:      map[string]string{"UTCR_Chain": "4"},
				expected: "Admin = 4\n",
			},
			{
				// the exported value carries the quotes
				name:     "string",
				files:    []string{"Admin={{Chain}}\n"},
				env:      map[string]string{"UTCR_Chain": "\"4\""},
				expected: "Admin = \"4\"\n",
			},
		},
	}

	for group, cases := range groups {
		for _, tc := range cases {
			t.Run(group+"/"+tc.name, func(t *testing.T) {
				sut := newTestConfigRender(tc.files, tc.env)
				if tc.expectedMerged != "" {
					merged, err := sut.Merge()
					require.NoError(t, err)
					require.Equal(t, tc.expectedMerged, merged)
				}
				res, err := sut.Render()
				if tc.expectedError != nil {
					require.ErrorIs(t, err, tc.expectedError)
				} else {
					require.NoError(t, err)
				}
				require.Equal(t, tc.expected, res)
			})
		}
	}
}

func TestConfigRenderNestedTables(t *testing.T) {
	defaults := `
		[Node]
	DBPath="/generic/path"
	BlockTime="6s"
	[Node.Backup]
		DBPath="/tmp/node.sqlite"
`
	file := `
		[Node.Backup]
		DBPath="{{Node.DBPath}}"
	`

	res, err := newTestConfigRender([]string{defaults, file}, nil).Render()
	require.NoError(t, err)
	require.Equal(t, "\n[Node]\n  BlockTime = \"6s\"\n  DBPath = \"/generic/path\"\n\n  [Node.Backup]\n    DBPath = \"/generic/path\"\n", res)

	// Node.DBPath is not a var, the env var only affects the references to it
	res, err = newTestConfigRender([]string{defaults, file}, map[string]string{"UTCR_Node_DBPath": "env"}).Render()
	require.NoError(t, err)
	require.Equal(t, "\n[Node]\n  BlockTime = \"6s\"\n  DBPath = \"/generic/path\"\n\n  [Node.Backup]\n    DBPath = \"env\"\n", res)
}

func TestConfigRenderGetVars(t *testing.T) {
	sut := newTestConfigRender(nil, nil)
	require.Equal(t, []string{"PathRWData", "AdminAddr"},
		sut.GetVars("DBPath = \"{{PathRWData}}/rolldown.sqlite\"\nAdmin = \"{{AdminAddr}}\"\n"))
	require.Empty(t, sut.GetVars("BlockTime = \"6s\"\n"))
}

func TestNewConfigRenderReadsProcessEnv(t *testing.T) {
	t.Setenv("UTCR_PathRWData", "\"/data\"")

	sut := NewConfigRender([]FileData{{Name: "file", Content: "DBPath={{PathRWData}}\n"}}, testEnvPrefix)
	res, err := sut.Render()
	require.NoError(t, err)
	require.Equal(t, "DBPath = \"/data\"\n", res)
}

func TestConfigRenderConvertFileToToml(t *testing.T) {
	jsonFile := `{
	"blockTimeSeconds": 6,
	"Rolldown": {
		"DisputePeriodLength": 10,
		"MaxRequestsPerUpdate": 20
	}
}
`
	data, err := convertFileToToml(jsonFile, "json")
	require.NoError(t, err)
	require.Equal(t, "blockTimeSeconds = 6.0\n\n[Rolldown]\n  DisputePeriodLength = 10.0\n  MaxRequestsPerUpdate = 20.0\n", data)

	_, err = convertFileToToml("a: 1", "yaml")
	require.ErrorIs(t, err, ErrUnsupportedConfigFileType)
}

func newTestConfigRender(contents []string, env map[string]string) *ConfigRender {
	files := make([]FileData, len(contents))
	for i, c := range contents {
		files[i] = FileData{Name: fmt.Sprintf("file%d", i), Content: c}
	}
	sut := NewConfigRender(files, testEnvPrefix)
	sut.LookupEnvFunc = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return sut
}
