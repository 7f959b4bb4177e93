package canvas

import (
	"fmt"
	"os"

	"github.com/phanxgames/sketchbook"
)

// Launch applies the shared config switches to runner and runs it: debug
// stats, the optional input script, and the window settings. With a script
// attached the window closes once the script finishes.
func Launch(runner *sketchbook.Runner, cfg *sketchbook.Config) error {
	runner.SetDebugMode(cfg.Debug)
	rc := RunConfigFrom(cfg)

	var sr *sketchbook.ScriptRunner
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		sr, err = sketchbook.LoadScript(data)
		if err != nil {
			return err
		}
		runner.SetScript(sr)
		rc.ExitOnScriptDone = true
	}

	g := NewGame(runner, rc)
	if sr != nil {
		g.WatchScript(sr)
	}
	return RunGame(g)
}
