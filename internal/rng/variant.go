package rng

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

const (
	MT2203  = "mt2203"
	MT19937 = "mt19937"

	Default = MT2203
)

// MT2203Streams is the size of the mt2203 lane parameter table.
const MT2203Streams = 6024

//go:generate go run ../../cmd/mt2203gen --out mt2203_table.go

// Variant is a registered parallel-stream generator.
type Variant struct {
	Name         string
	Description  string
	StateWords   int
	MaxLanes     int
	DefaultLanes int

	params func(lane int) *laneParams
}

var registry = map[string]*Variant{
	MT2203: {
		Name:         MT2203,
		Description:  "set of 6024 Mersenne-Twister lanes with period 2^2203-1, one searched parameter set per lane",
		StateWords:   69,
		MaxLanes:     MT2203Streams,
		DefaultLanes: 256,
		params:       mt2203Params,
	},
	MT19937: {
		Name:         MT19937,
		Description:  "MT19937 recursion in every lane, lanes separated by per-lane seed keys",
		StateWords:   624,
		MaxLanes:     4096,
		DefaultLanes: 256,
		params:       func(int) *laneParams { return &mt19937Params },
	},
}

// Normalize maps a user supplied variant name to its registry key. An empty
// name selects Default.
func Normalize(name string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(name))
	if v == "" {
		return Default, nil
	}
	if _, ok := registry[v]; !ok {
		return "", fmt.Errorf("%w: %q (expected %s)", ErrUnsupportedVariant, name, strings.Join(names(), ", "))
	}
	return v, nil
}

func Lookup(name string) (*Variant, error) {
	key, err := Normalize(name)
	if err != nil {
		return nil, err
	}
	return registry[key], nil
}

// Variants lists the registered variants sorted by name.
func Variants() []Variant {
	out := make([]Variant, 0, len(registry))
	for _, name := range names() {
		out = append(out, *registry[name])
	}
	return out
}

func names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

var mt19937Params = laneParams{
	n: 624, m: 397,
	upper: 0x80000000, lower: 0x7fffffff,
	a: 0x9908b0df,
	u: 11, s: 7, t: 15, l: 18,
	b: 0x9d2c5680, c: 0xefc60000,
}

// mt2203Entry is one lane of the generated table in mt2203_table.go.
type mt2203Entry struct {
	a, b, c uint32
}

var mt2203Table = sync.OnceValue(func() []laneParams {
	table := make([]laneParams, len(mt2203Entries))
	for i, e := range mt2203Entries {
		table[i] = laneParams{
			n: 69, m: 34,
			upper: 0xffffffe0, lower: 0x0000001f,
			a: e.a,
			u: 12, s: 7, t: 15, l: 18,
			b: e.b,
			c: e.c,
		}
	}
	return table
})

func mt2203Params(lane int) *laneParams {
	return &mt2203Table()[lane]
}
