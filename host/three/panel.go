//go:build js

package three

import (
	"log"
	"syscall/js"

	"github.com/nobonobo/neon-viewer/host/viewer"
	"github.com/nobonobo/neon-viewer/schema"
)

// panel is a lil-gui instance editing a plain JS object that mirrors the
// parameter set.
type panel struct {
	goObject
	values js.Value
}

func newPanel(gui js.Value) *panel {
	return &panel{
		goObject: goObject{gui},
		values:   js.Global().Get("Object").New(),
	}
}

func (p *panel) AddSlider(control viewer.Control, value float64, onChange func(value float64)) {
	p.values.Set(control.Name, value)
	ctrl := p.jsValue.Call("add", p.values, control.Name, control.Min, control.Max)
	if control.Step > 0 {
		ctrl.Call("step", control.Step)
	}
	ctrl.Call("onChange", js.FuncOf(func(this js.Value, args []js.Value) any {
		onChange(args[0].Float())
		return nil
	}))
}

func (p *panel) AddColor(control viewer.Control, value schema.Color, onChange func(color schema.Color)) {
	p.values.Set(control.Name, int(value))
	ctrl := p.jsValue.Call("addColor", p.values, control.Name)
	ctrl.Call("onChange", js.FuncOf(func(this js.Value, args []js.Value) any {
		arg := args[0]
		if arg.Type() == js.TypeString {
			color, err := schema.ParseColor(arg.String())
			if err != nil {
				log.Println(err)
				return nil
			}
			onChange(color)
			return nil
		}
		onChange(schema.Color(arg.Int()))
		return nil
	}))
}
