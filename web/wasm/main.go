//go:build js && wasm

// WASM bridge exposing the tape processor to an AudioWorklet host.
// The worklet passes Float32Array blocks; samples are copied in, processed
// in place, and copied back out, which replaces raw shared-memory pointer
// access with the idiomatic slice boundary.
package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-tape/dsp/block"
	"github.com/cwbudde/algo-tape/dsp/tape"
)

var (
	processor *tape.Processor
	scratch   = block.New(0)
	funcs     []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("newProcessor", export(func(args []js.Value) any {
		var opts []tape.Option
		if len(args) > 0 {
			opts = append(opts, tape.WithDrive(args[0].Float()))
		}
		if len(args) > 2 {
			opts = append(opts, tape.WithWarmthCutoff(args[1].Float(), args[2].Float()))
		}

		p, err := tape.New(opts...)
		if err != nil {
			return err.Error()
		}
		processor = p
		return js.Null()
	}))

	api.Set("process", export(func(args []js.Value) any {
		if processor == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}

		input := args[0]
		n := input.Length()

		scratch.Resize(n)
		buf := scratch.Samples()
		for i := 0; i < n; i++ {
			buf[i] = float32(input.Index(i).Float())
		}

		processor.ProcessInPlace(buf)

		out := js.Global().Get("Float32Array").New(n)
		for i := 0; i < n; i++ {
			out.SetIndex(i, buf[i])
		}
		return out
	}))

	api.Set("filterState", export(func(_ []js.Value) any {
		if processor == nil {
			return 0.0
		}
		return float64(processor.FilterState())
	}))

	js.Global().Set("AlgoTape", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
