//go:build js

package three

import (
	"net/url"
	"syscall/js"

	"github.com/nobonobo/neon-viewer/host/viewer"
)

var (
	document = js.Global().Get("document")
	window   = js.Global().Get("window")
	location = js.Global().Get("location")
	THREE    = js.Global().Get("THREE")
	addons   = js.Global().Get("THREE_ADDONS")
	params   url.Values
)

func init() {
	u, _ := url.Parse(location.Get("href").String())
	params = u.Query()
}

func GetParam(key string) string {
	return params.Get(key)
}

type goObject struct {
	jsValue js.Value
}

func (g goObject) ref() js.Value {
	return g.jsValue
}

type jsObject interface {
	ref() js.Value
}

func refOf(node viewer.Node) js.Value {
	if obj, ok := node.(jsObject); ok {
		return obj.ref()
	}
	return js.Undefined()
}

var _ viewer.Promise[struct{}] = goPromise[struct{}]{}

type goPromise[T any] struct {
	goObject
	convert func(value js.Value) T
}

func (g goPromise[T]) Then(cb func(value T)) viewer.Promise[T] {
	var jsFunc js.Func
	jsFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer jsFunc.Release()
		cb(g.convert(args[0]))
		return nil
	})
	g.jsValue.Call("then", jsFunc)
	return g
}

func (g goPromise[T]) Catch(cb func(err error)) viewer.Promise[T] {
	var jsFunc js.Func
	jsFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer jsFunc.Release()
		cb(js.Error{
			Value: args[0],
		})
		return js.Undefined()
	})
	g.jsValue.Call("catch", jsFunc)
	return g
}
