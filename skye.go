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

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/timburks/skye/pkg/commander"
	"github.com/timburks/skye/pkg/config"
	"github.com/timburks/skye/pkg/editor"
	"github.com/timburks/skye/pkg/screen"
)

func main() {
	log.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	var script, configPath string
	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "--eval": // eval program
			i++
			if i >= len(os.Args) {
				log.Fatal("No file specified for --eval option")
			}
			script = os.Args[i]
		case "--config":
			i++
			if i >= len(os.Args) {
				log.Fatal("No file specified for --config option")
			}
			configPath = os.Args[i]
		default:
			log.Fatalf("Unknown argument %s", os.Args[i])
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	log.SetLevel(cfg.GetLogLevel())

	if script == "" {
		// The screen owns the terminal, so log to a file.
		f, err := os.OpenFile(cfg.GetLogFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	// The editor owns the sky and the panels that show it.
	e := editor.NewEditor(cfg)

	// The commander converts user inputs into operations on the editor.
	c := commander.NewCommander(e)

	if initScript := cfg.GetInitScript(); initScript != "" {
		if err := c.ParseEvalFile(initScript); err != nil {
			log.Errorf("init script: %v", err)
		}
	}

	if script != "" {
		// Run a skye script and exit.
		if err := c.ParseEvalFile(script); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	s, err := screen.NewScreen()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		if err := e.Update(); err != nil {
			c.SetMessage(err.Error())
		}
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Errorf("%v", err)
		}
	}
}
