// Package scenescript evaluates Lisp scene descriptions into renderable
// scenes. Scripts run inside a sandboxed zygomys interpreter that exposes a
// small set of builtins for spheres, materials, lights and camera settings;
// anything a script leaves out falls back to the scene defaults.
package scenescript

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/WilliamC07/graphics-final/log"
	"github.com/WilliamC07/graphics-final/pkg/scene"
)

// evalTimeout is the hard limit for a single script evaluation. Scripts are
// sandboxed, but nothing stops one from looping forever.
const evalTimeout = 5 * time.Second

// EvalError is a script problem the engine could attribute to a source line.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates scene scripts. Each call to Evaluate creates a fresh
// sandboxed environment, so one Engine can serve many scripts.
type Engine struct {
	logger log.Logger
}

// NewEngine creates a script engine.
func NewEngine() *Engine {
	return &Engine{logger: log.New("script")}
}

// EvaluateFile reads a script from disk and evaluates it.
func (e *Engine) EvaluateFile(path string) (*scene.Scene, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene script: %w", err)
	}

	result, err := e.Evaluate(string(source))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// Evaluate runs a scene script and returns the scene it describes. Script
// errors come back as EvalError values carrying a line number when zygomys
// reported one. Panics inside the interpreter and runaway scripts are
// converted to plain errors.
func (e *Engine) Evaluate(source string) (*scene.Scene, error) {
	type outcome struct {
		scene *scene.Scene
		err   error
	}

	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("panic during script evaluation: %v", r)}
			}
		}()
		result, err := e.evaluate(source)
		ch <- outcome{scene: result, err: err}
	}()

	timer := time.NewTimer(evalTimeout)
	defer timer.Stop()

	select {
	case out := <-ch:
		return out.scene, out.err
	case <-timer.C:
		return nil, fmt.Errorf("script evaluation timed out after %s", evalTimeout)
	}
}

func (e *Engine) evaluate(source string) (*scene.Scene, error) {
	builder := newSceneBuilder()

	// An empty script is a valid description of the default scene setup.
	if strings.TrimSpace(source) == "" {
		return builder.build(), nil
	}

	// Sandbox mode keeps filesystem and system builtins out of reach.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, builder)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, wrapZygoError(err)
	}
	if _, err := env.Run(); err != nil {
		return nil, wrapZygoError(err)
	}

	result := builder.build()
	e.logger.Debugf("scene script produced %d spheres and %d lights", len(builder.spheres), len(builder.lights))
	return result, nil
}

// zygomys formats parse errors as "Error on line N: <details>" and some
// runtime errors as "line N: <details>".
var (
	linePattern      = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
	linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)
)

// wrapZygoError converts a zygomys error into an EvalError, extracting the
// source line when the message carries one.
func wrapZygoError(err error) error {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return EvalError{Line: line, Message: strings.TrimSpace(m[2])}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return EvalError{Line: line, Message: strings.TrimSpace(m[2])}
	}

	return EvalError{Message: strings.TrimSpace(msg)}
}
