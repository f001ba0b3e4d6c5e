package pixelate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Params holds string-typed filter parameters, as they arrive from a
// command line or a chain description.
type Params map[string]string

// Factory builds a filter from parameters.
type Factory func(p Params) (Filter, error)

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

var filters = &registry{factories: make(map[string]Factory)}

func init() {
	Register("grayscale", newGrayscaleFromParams)
	Register("gamma", newGammaFromParams)
	Register("invert", simpleFactory(func() Filter { return NewInvert() }))
	Register("halftone", simpleFactory(func() Filter { return NewHalftone() }))
	Register("dither", simpleFactory(func() Filter { return NewDither() }))
	Register("edge", newEdgeFromParams)
	Register("diffuse", newDiffuseFromParams)
}

// foldName normalizes filter, parameter and method names for lookup.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Register makes a filter factory available under name. Registering an
// existing name replaces it.
func Register(name string, f Factory) {
	key := foldName(name)
	filters.mu.Lock()
	_, replaced := filters.factories[key]
	filters.factories[key] = f
	filters.mu.Unlock()

	if replaced {
		Logger().Info("pixelate: filter replaced", "name", key)
	}
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	filters.mu.RLock()
	defer filters.mu.RUnlock()
	f, ok := filters.factories[foldName(name)]
	return f, ok
}

// Names returns all registered filter names, sorted.
func Names() []string {
	filters.mu.RLock()
	names := make([]string, 0, len(filters.factories))
	for name := range filters.factories {
		names = append(names, name)
	}
	filters.mu.RUnlock()
	slices.Sort(names)
	return names
}

// NewFilter builds the filter registered under name.
func NewFilter(name string, p Params) (Filter, error) {
	factory, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	if p == nil {
		p = Params{}
	}
	f, err := factory(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", foldName(name), err)
	}
	return f, nil
}

// ChainOption configures ParseChain.
type ChainOption func(*chainConfig)

type chainConfig struct {
	defaults map[string]Params
}

// WithStageDefaults supplies parameters for every stage named name.
// Parameters written in the chain description take precedence.
func WithStageDefaults(name string, p Params) ChainOption {
	return func(c *chainConfig) {
		c.defaults[foldName(name)] = p
	}
}

// ParseChain builds a filter from a description such as
//
//	invert,halftone
//	grayscale,edge:intensity=2:method=scharr
//
// Stages are separated by commas; each stage is a registered name followed
// by optional colon-separated key=value parameters.
func ParseChain(desc string, opts ...ChainOption) (Filter, error) {
	cfg := chainConfig{defaults: make(map[string]Params)}
	for _, opt := range opts {
		opt(&cfg)
	}

	stages := strings.Split(desc, ",")
	chain := make([]Filter, 0, len(stages))
	for i, stage := range stages {
		f, err := parseStage(stage, cfg.defaults)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		chain = append(chain, f)
	}
	return Chain(chain...)
}

// parseStage parses "name:key=value:key=value" on top of the defaults
// registered for name.
func parseStage(stage string, defaults map[string]Params) (Filter, error) {
	parts := strings.Split(strings.TrimSpace(stage), ":")
	if parts[0] == "" {
		return nil, invalidParam("empty stage")
	}
	base := defaults[foldName(parts[0])]
	p := make(Params, len(base)+len(parts)-1)
	for key, value := range base {
		p[foldName(key)] = value
	}
	for _, kv := range parts[1:] {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, invalidParam("parameter %q is not key=value", kv)
		}
		p[foldName(key)] = strings.TrimSpace(value)
	}
	return NewFilter(parts[0], p)
}

// only rejects keys outside allowed.
func (p Params) only(allowed ...string) error {
	for key := range p {
		if !slices.Contains(allowed, key) {
			return invalidParam("unknown parameter %q", key)
		}
	}
	return nil
}

// Float parses key as a float in [lo, hi] (both inclusive), returning def
// when the key is absent.
func (p Params) Float(key string, def, lo, hi float64) (float64, error) {
	s, ok := p[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalidParam("%s: not a float: %s", key, s)
	}
	if v < lo || v > hi {
		return 0, invalidParam("%s: not in range [%v, %v]: %s", key, lo, hi, s)
	}
	return v, nil
}

// Int parses key as an integer in [lo, hi], returning def when the key is
// absent.
func (p Params) Int(key string, def, lo, hi int) (int, error) {
	s, ok := p[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidParam("%s: not an integer: %s", key, s)
	}
	if v < lo || v > hi {
		return 0, invalidParam("%s: not in range [%d, %d]: %s", key, lo, hi, s)
	}
	return v, nil
}

// Bool parses key as a boolean, returning def when the key is absent.
func (p Params) Bool(key string, def bool) (bool, error) {
	s, ok := p[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, invalidParam("%s: not a boolean: %s", key, s)
	}
	return v, nil
}

// Get returns key, or def when absent.
func (p Params) Get(key, def string) string {
	if s, ok := p[key]; ok {
		return s
	}
	return def
}

// built drops the typed nil a failed constructor returns.
func built[F Filter](f F, err error) (Filter, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}

func simpleFactory(fn func() Filter) Factory {
	return func(p Params) (Filter, error) {
		if err := p.only(); err != nil {
			return nil, err
		}
		return fn(), nil
	}
}

func newGrayscaleFromParams(p Params) (Filter, error) {
	if err := p.only("red", "green", "blue"); err != nil {
		return nil, err
	}
	r, err := p.Float("red", LumaR, 0, 1)
	if err != nil {
		return nil, err
	}
	g, err := p.Float("green", LumaG, 0, 1)
	if err != nil {
		return nil, err
	}
	b, err := p.Float("blue", LumaB, 0, 1)
	if err != nil {
		return nil, err
	}
	return built(NewGrayscale(r, g, b))
}

func newGammaFromParams(p Params) (Filter, error) {
	if err := p.only("gamma"); err != nil {
		return nil, err
	}
	if _, ok := p["gamma"]; !ok {
		return nil, invalidParam("gamma is required")
	}
	g, err := p.Float("gamma", 1, 0, 1e6)
	if err != nil {
		return nil, err
	}
	return built(NewGamma(g))
}

func newEdgeFromParams(p Params) (Filter, error) {
	if err := p.only("intensity", "method", "workers"); err != nil {
		return nil, err
	}
	workers, err := p.Int("workers", 1, 1, 1024)
	if err != nil {
		return nil, err
	}
	intensity, err := p.Float("intensity", 1, 0, 1e6)
	if err != nil {
		return nil, err
	}
	method, err := ParseEdgeMethod(p.Get("method", string(EdgeSobel)))
	if err != nil {
		return nil, err
	}
	return built(NewEdgeDetect(intensity, WithEdgeMethod(method), WithEdgeWorkers(workers)))
}

func newDiffuseFromParams(p Params) (Filter, error) {
	if err := p.only("matrix", "serpentine"); err != nil {
		return nil, err
	}
	serpentine, err := p.Bool("serpentine", false)
	if err != nil {
		return nil, err
	}
	return built(NewDiffuse(p.Get("matrix", ""), serpentine))
}
