//go:build js && wasm

package main

import (
	"encoding/binary"
	"log"
	"math"
	"sync"
	"syscall/js"

	"faultline/terrain"
)

// Maps handed out to JS, keyed by handle.
var (
	mapsMu     sync.Mutex
	maps       = map[int]*terrain.Map{}
	nextHandle = 1
)

func main() {
	worldGen := js.Global().Get("WorldGen")
	if !worldGen.Truthy() {
		worldGen = js.Global().Get("Object").New()
		js.Global().Set("WorldGen", worldGen)
	}

	worldGen.Set("createBaseMap", js.FuncOf(createBaseMap))
	worldGen.Set("generateElevations", js.FuncOf(generateElevations))
	worldGen.Set("addFault", js.FuncOf(addFault))
	worldGen.Set("resetMap", js.FuncOf(resetMap))
	worldGen.Set("readElevations", js.FuncOf(readElevations))
	worldGen.Set("releaseMap", js.FuncOf(releaseMap))
	log.Println("WorldGen ready")

	select {}
}

// createBaseMap(width, height[, seed]) -> handle
func createBaseMap(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		log.Printf("Warning: createBaseMap wants width and height, got %d args", len(args))
		return js.Null()
	}
	var seed int64
	if len(args) > 2 {
		seed = int64(args[2].Float())
	}

	m, err := terrain.CreateBaseMap(args[0].Int(), args[1].Int(), seed)
	if err != nil {
		log.Printf("Warning: createBaseMap: %v", err)
		return js.Null()
	}

	mapsMu.Lock()
	defer mapsMu.Unlock()
	h := nextHandle
	nextHandle++
	maps[h] = m
	return h
}

// lookup resolves args[0] to a map. When width and height follow they must
// match the map they refer to.
func lookup(name string, args []js.Value) *terrain.Map {
	if len(args) < 1 {
		log.Printf("Warning: %s called without a handle", name)
		return nil
	}

	mapsMu.Lock()
	m := maps[args[0].Int()]
	mapsMu.Unlock()
	if m == nil {
		log.Printf("Warning: %s: unknown handle %d", name, args[0].Int())
		return nil
	}

	if len(args) >= 3 {
		w, h := args[1].Int(), args[2].Int()
		if w != m.Grid.Width || h != m.Grid.Height {
			log.Printf("Warning: %s: %dx%d does not match map %dx%d", name, w, h, m.Grid.Width, m.Grid.Height)
			return nil
		}
	}
	return m
}

// generateElevations(handle, width, height, iterations) -> handle
func generateElevations(this js.Value, args []js.Value) any {
	m := lookup("generateElevations", args)
	if m == nil {
		return js.Null()
	}
	iterations := 0
	if len(args) > 3 {
		iterations = args[3].Int()
	}
	m.GenerateElevations(iterations)
	return args[0]
}

// addFault(handle, width, height)
func addFault(this js.Value, args []js.Value) any {
	if m := lookup("addFault", args); m != nil {
		m.AddFault()
	}
	return nil
}

// resetMap(handle, width, height)
func resetMap(this js.Value, args []js.Value) any {
	if m := lookup("resetMap", args); m != nil {
		m.ResetMap()
	}
	return nil
}

// readElevations(handle) -> Float64Array, row-major
func readElevations(this js.Value, args []js.Value) any {
	m := lookup("readElevations", args)
	if m == nil {
		return js.Null()
	}

	cells := m.Elevations()
	buf := make([]byte, len(cells)*8)
	for i, v := range cells {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}

	raw := js.Global().Get("Uint8Array").New(len(buf))
	js.CopyBytesToJS(raw, buf)
	return js.Global().Get("Float64Array").New(raw.Get("buffer"))
}

// releaseMap(handle)
func releaseMap(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return nil
	}
	mapsMu.Lock()
	delete(maps, args[0].Int())
	mapsMu.Unlock()
	return nil
}
