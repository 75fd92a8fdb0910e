// Package dateformatter exposes the dateformat compiler as an embeddable
// processor: a JSON-configured executor suitable for workflow nodes and the
// service surface. Compiled specs are cached per executor so repeated
// operations with the same spec skip compilation entirely.
package dateformatter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/wehubfusion/Daedalus/pkg/dateformat"
)

// Executor implements date parse/format/convert operations. It is safe for
// concurrent use; the compiled-spec cache is the only shared state.
type Executor struct {
	mu    sync.RWMutex
	cache map[string]*dateformat.DateFormat
}

// NewExecutor creates a new date formatter executor
func NewExecutor() *Executor {
	return &Executor{cache: make(map[string]*dateformat.DateFormat)}
}

// Execute runs one operation. The config selects and parameterizes the
// operation; input carries the operation payload as JSON.
func (e *Executor) Execute(ctx context.Context, config Config, input []byte) ([]byte, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dateformatter configuration: %w", err)
	}

	switch config.Operation {
	case "parse":
		var params ParseParams
		if err := json.Unmarshal(config.Params, &params); err != nil {
			return nil, NewConfigError("params", err.Error())
		}
		return e.executeParse(input, params)

	case "format":
		var params FormatParams
		if err := json.Unmarshal(config.Params, &params); err != nil {
			return nil, NewConfigError("params", err.Error())
		}
		return e.executeFormat(input, params)

	case "convert":
		var params ConvertParams
		if err := json.Unmarshal(config.Params, &params); err != nil {
			return nil, NewConfigError("params", err.Error())
		}
		return e.executeConvert(input, params)

	default:
		return nil, fmt.Errorf("unknown operation: %s", config.Operation)
	}
}

// PluginType returns the plugin type this executor handles
func (e *Executor) PluginType() string {
	return "plugin-date-formatter"
}

// compiled returns the cached compiled form of spec, compiling it on first
// use. The hour-mode override participates in the cache key since it
// changes the compiled program's semantics.
func (e *Executor) compiled(spec string, is24Hour *bool) (*dateformat.DateFormat, error) {
	key := spec
	var opts []dateformat.Option
	if is24Hour != nil {
		if *is24Hour {
			key += "|24"
			opts = append(opts, dateformat.WithHourMode24())
		} else {
			key += "|12"
			opts = append(opts, dateformat.WithHourMode12())
		}
	}

	e.mu.RLock()
	f, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return f, nil
	}

	f, err := dateformat.Compile(spec, opts...)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.cache[key] = f
	e.mu.Unlock()
	return f, nil
}
