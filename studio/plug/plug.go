// Package plug defines the contract between the frame driver and a scene.
package plug

import (
	"fmt"
	"sort"

	"panim/studio/render"
	"panim/studio/sound"
)

// Env is what a scene receives every frame.
type Env struct {
	// DeltaTime is the elapsed time since the previous frame, in seconds.
	DeltaTime float64
	Width     int
	Height    int
	Canvas    *render.Canvas
	// PlaySound triggers a sound effect. It never blocks.
	PlaySound func(sound.ID)
}

// Play triggers id if the environment has a sound hook.
func (e Env) Play(id sound.ID) {
	if e.PlaySound != nil {
		e.PlaySound(id)
	}
}

// Plug is an animated scene. All state lives in the Plug value; the driver
// owns it and hands it the Env on each call.
type Plug interface {
	Name() string
	// Reset rewinds the scene to its first frame.
	Reset()
	// Update advances the scene by env.DeltaTime and draws it.
	Update(env Env)
	// Finished reports whether the scene reached its end.
	Finished() bool
}

// Factory builds a fresh plug.
type Factory func() Plug

// Registry maps plug names to factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory. Registering the same name twice panics.
func (r *Registry) Register(name string, f Factory) {
	if _, dup := r.factories[name]; dup {
		panic(fmt.Sprintf("plug: %q registered twice", name))
	}
	r.factories[name] = f
}

// New builds the plug registered under name.
func (r *Registry) New(name string) (Plug, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("plug: unknown plug %q (have %v)", name, r.Names())
	}
	return f(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
