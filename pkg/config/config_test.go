//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skye "github.com/timburks/skye/pkg/types"
	"github.com/timburks/skye/pkg/undo"
)

func writeFile(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "skye.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestMissingFileGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, undo.DefaultLimit, c.Undo.Limit)
	assert.True(t, c.View.Compass)
	assert.True(t, skye.Black.IsEqualTo(c.GetBackground()))
	assert.Equal(t, log.InfoLevel, c.GetLogLevel())
	assert.Equal(t, "", c.GetInitScript())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
[undo]
limit = 10

[log]
level = "debug"
file = "/tmp/skye.log"

[view]
compass = false
background = "#336699"

[script]
init = "/tmp/init.lisp"
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Undo.Limit)
	assert.Equal(t, log.DebugLevel, c.GetLogLevel())
	assert.Equal(t, "/tmp/skye.log", c.GetLogFile())
	assert.False(t, c.View.Compass)
	assert.Equal(t, "#336699", c.GetBackground().Hex())
	assert.Equal(t, "/tmp/init.lisp", c.GetInitScript())
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	c, err := Load(writeFile(t, "[undo]\nlimit = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Undo.Limit)
	assert.True(t, c.View.Compass)
	assert.Equal(t, DefaultLogFile, c.Log.File)
}

func TestInvalidFiles(t *testing.T) {
	for name, text := range map[string]string{
		"syntax":     "[undo\nlimit = 1",
		"type":       "[undo]\nlimit = \"many\"",
		"limit":      "[undo]\nlimit = -1",
		"level":      "[log]\nlevel = \"loud\"",
		"background": "[view]\nbackground = \"blue\"",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, text))
			assert.Error(t, err)
		})
	}
}

func TestExpandHome(t *testing.T) {
	c := Default()
	assert.NotContains(t, c.GetLogFile(), "~")
}
