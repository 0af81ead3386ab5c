package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/reminder-sink/internal/conventions"
	"github.com/slok/reminder-sink/internal/model"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const testConfigFile = `
path:
  - /cfg/scripts
default_interpreter: python3
cpu_count: 2
timeout: 30s
silent_file: /cfg/silent.txt
`

func TestResolveConfig(t *testing.T) {
	tests := map[string]struct {
		root      func(t *testing.T) *RootCommand
		expConfig func(t *testing.T) model.Config
		expErr    bool
	}{
		"Flags alone should build the configuration": {
			root: func(t *testing.T) *RootCommand {
				return &RootCommand{
					ScriptsPath:        "/a:/b",
					DefaultInterpreter: "zsh",
					SilentFile:         "/tmp/silent.txt",
				}
			},
			expConfig: func(t *testing.T) model.Config {
				return model.Config{
					SearchDirs:         []string{"/a", "/b"},
					DefaultInterpreter: "zsh",
					SilentFile:         "/tmp/silent.txt",
				}
			},
		},

		"Defaults should fill the values the flags leave empty": {
			root: func(t *testing.T) *RootCommand {
				return &RootCommand{ScriptsPath: "/a"}
			},
			expConfig: func(t *testing.T) model.Config {
				return model.Config{
					SearchDirs:         []string{"/a"},
					DefaultInterpreter: conventions.DefaultInterpreter,
					SilentFile:         conventions.DefaultSilentFile(),
				}
			},
		},

		"The configuration file should fill the values the flags leave empty": {
			root: func(t *testing.T) *RootCommand {
				return &RootCommand{ConfigFile: writeConfigFile(t, testConfigFile)}
			},
			expConfig: func(t *testing.T) model.Config {
				return model.Config{
					SearchDirs:         []string{"/cfg/scripts"},
					DefaultInterpreter: "python3",
					Workers:            2,
					Timeout:            30 * time.Second,
					SilentFile:         "/cfg/silent.txt",
				}
			},
		},

		"Flags should take precedence over the configuration file": {
			root: func(t *testing.T) *RootCommand {
				return &RootCommand{
					ConfigFile:         writeConfigFile(t, testConfigFile),
					ScriptsPath:        "/flag/scripts",
					DefaultInterpreter: "zsh",
					SilentFile:         "/flag/silent.txt",
				}
			},
			expConfig: func(t *testing.T) model.Config {
				return model.Config{
					SearchDirs:         []string{"/flag/scripts"},
					DefaultInterpreter: "zsh",
					Workers:            2,
					Timeout:            30 * time.Second,
					SilentFile:         "/flag/silent.txt",
				}
			},
		},

		"A missing config file asked for explicitly should fail": {
			root: func(t *testing.T) *RootCommand {
				return &RootCommand{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}
			},
			expErr: true,
		},

		"An invalid config file should fail": {
			root: func(t *testing.T) *RootCommand {
				return &RootCommand{ConfigFile: writeConfigFile(t, "cpu_count: -2\n")}
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			cfg, err := test.root(t).resolveConfig(context.TODO())

			if test.expErr {
				require.Error(err)
				return
			}

			require.NoError(err)
			assert.Equal(test.expConfig(t), cfg)
		})
	}
}
