//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-ledwave/dsp/core"
	"github.com/cwbudde/algo-ledwave/dsp/phase"
	"github.com/cwbudde/algo-ledwave/internal/webdemo"
)

var (
	player *webdemo.Player
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		scene := "scroll"
		if len(args) > 0 && args[0].Type() == js.TypeString {
			scene = args[0].String()
		}
		var opts []core.AnimationOption
		if len(args) > 1 {
			opts = append(opts, core.WithTimeScale(args[1].Float()))
		}
		p, err := webdemo.NewDefaultPlayer(scene, opts...)
		if err != nil {
			return err.Error()
		}
		player = p
		return js.Null()
	}))

	api.Set("scenes", export(func(_ []js.Value) any {
		list := js.Global().Get("Array").New()
		for i, sc := range phase.Presets() {
			item := js.Global().Get("Object").New()
			item.Set("name", sc.Name)
			item.Set("title", sc.Title)
			item.Set("animated", sc.Animated)
			list.SetIndex(i, item)
		}
		return list
	}))

	api.Set("setScene", export(func(args []js.Value) any {
		if player == nil || len(args) < 1 {
			return js.Null()
		}
		sc, ok := phase.LookupPreset(args[0].String())
		if !ok {
			return "unknown scene " + args[0].String()
		}
		if err := player.SetScene(sc); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setTransport", export(func(args []js.Value) any {
		if player == nil || len(args) < 2 {
			return js.Null()
		}
		if err := player.SetTransport(args[0].Float(), args[1].Float()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setRunning", export(func(args []js.Value) any {
		if player == nil || len(args) < 1 {
			return js.Null()
		}
		player.SetRunning(args[0].Bool())
		return js.Null()
	}))

	api.Set("setLoop", export(func(args []js.Value) any {
		if player == nil || len(args) < 1 {
			return js.Null()
		}
		player.SetLoop(args[0].Bool())
		return js.Null()
	}))

	api.Set("seek", export(func(args []js.Value) any {
		if player == nil || len(args) < 1 {
			return js.Null()
		}
		player.Seek(args[0].Float())
		return player.Phase()
	}))

	api.Set("advance", export(func(args []js.Value) any {
		if player == nil || len(args) < 1 {
			return 0.0
		}
		return player.Advance(args[0].Float())
	}))

	api.Set("labels", export(func(_ []js.Value) any {
		if player == nil {
			return js.Null()
		}
		labels := player.Labels()
		out := make([]any, len(labels))
		for i, l := range labels {
			out[i] = l
		}
		return out
	}))

	api.Set("frame", export(func(_ []js.Value) any {
		if player == nil {
			return js.Null()
		}
		f := player.Frame()
		intensities := make([]any, len(f.Intensities))
		opacities := make([]any, len(f.Intensities))
		for i, v := range f.Intensities {
			intensities[i] = v
			opacities[i] = phase.FillOpacity(v)
		}
		curves := make([]any, len(f.Curves))
		for i, c := range f.Curves {
			curves[i] = floatArray(c)
		}
		out := js.Global().Get("Object").New()
		out.Set("phase", f.Phase)
		out.Set("running", player.Running())
		out.Set("intensities", intensities)
		out.Set("opacities", opacities)
		out.Set("curves", curves)
		return out
	}))

	js.Global().Set("AlgoLEDWaveDemo", api)
	select {}
}

func floatArray(values []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(values))
	for i, v := range values {
		arr.SetIndex(i, v)
	}
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
