//go:build js

package three

import (
	"syscall/js"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/neon-viewer/host/viewer"
	"github.com/nobonobo/neon-viewer/schema"
)

var _ viewer.Backend = (*Backend)(nil)

// Backend builds viewer objects with the three.js modules published by the
// web shell as THREE and THREE_ADDONS.
type Backend struct{}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Viewport() (int, int) {
	return window.Get("innerWidth").Int(), window.Get("innerHeight").Int()
}

func (b *Backend) CreateScene(info viewer.SceneInfo) viewer.Scene {
	scene := THREE.Get("Scene").New()
	scene.Set("background", THREE.Get("Color").New(int(info.Background)))
	return &node{goObject{scene}}
}

func (b *Backend) CreateCamera(info viewer.CameraInfo) viewer.Node {
	camera := THREE.Get("PerspectiveCamera").New(
		info.FieldOfView.Degrees(),
		info.Aspect,
		info.Near,
		info.Far,
	)
	setPosition(camera, info.Position)
	return &node{goObject{camera}}
}

func (b *Backend) CreateRenderer(info viewer.RendererInfo) viewer.Renderer {
	renderer := THREE.Get("WebGLRenderer").New()
	renderer.Call("setSize", info.Width, info.Height)
	document.Get("body").Call("appendChild", renderer.Get("domElement"))
	return &renderer3{goObject{renderer}}
}

func (b *Backend) CreateClock() viewer.Node {
	return &node{goObject{THREE.Get("Clock").New()}}
}

func (b *Backend) CreateAmbientLight(info viewer.AmbientLightInfo) viewer.Node {
	light := THREE.Get("AmbientLight").New(int(info.Color), info.Intensity)
	return &node{goObject{light}}
}

func (b *Backend) CreatePointLight(info viewer.PointLightInfo) viewer.Node {
	light := THREE.Get("PointLight").New(int(info.Color), info.Intensity, info.Distance)
	setPosition(light, info.Position)
	light.Set("castShadow", info.CastShadow)
	return &node{goObject{light}}
}

func (b *Backend) CreateGround(info viewer.GroundInfo) viewer.Node {
	mesh := THREE.Get("Mesh").New(
		THREE.Get("PlaneGeometry").New(info.Width, info.Height),
		THREE.Get("MeshPhongMaterial").New(map[string]any{
			"color":      int(info.Color),
			"depthWrite": info.DepthWrite,
		}),
	)
	mesh.Get("rotation").Set("x", info.RotationX.Radians())
	return &node{goObject{mesh}}
}

func (b *Backend) CreateGrid(info viewer.GridInfo) viewer.Node {
	grid := THREE.Get("GridHelper").New(info.Size, info.Divisions, int(info.Color), int(info.Color))
	material := grid.Get("material")
	material.Set("opacity", info.Opacity)
	material.Set("transparent", info.Opacity < 1)
	return &node{goObject{grid}}
}

func (b *Backend) CreateBloomPass(info viewer.BloomPassInfo) viewer.BloomPass {
	pass := addons.Get("UnrealBloomPass").New(
		THREE.Get("Vector2").New(info.Width, info.Height),
		info.Strength,
		info.Radius,
		info.Threshold,
	)
	return &bloomPass{goObject{pass}}
}

func (b *Backend) CreateComposer(info viewer.ComposerInfo) viewer.Composer {
	composer := addons.Get("EffectComposer").New(refOf(info.Renderer))
	composer.Call("addPass", addons.Get("RenderPass").New(refOf(info.Scene), refOf(info.Camera)))
	composer.Call("addPass", refOf(info.Bloom))
	composer.Call("setSize", info.Width, info.Height)
	return &composer3{goObject{composer}}
}

func (b *Backend) CreateStandardMaterial(info viewer.MaterialInfo) viewer.Material {
	material := THREE.Get("MeshStandardMaterial").New(map[string]any{
		"color": int(info.Color),
	})
	return &material3{goObject{material}}
}

func (b *Backend) LoadModel(info viewer.ModelInfo) viewer.Promise[viewer.Model] {
	loader := addons.Get("OBJLoader").New()
	loader.Call("setPath", info.Path)
	return goPromise[viewer.Model]{
		goObject: goObject{jsValue: loader.Call("loadAsync", info.File)},
		convert: func(value js.Value) viewer.Model {
			return &model{goObject{value}}
		},
	}
}

func (b *Backend) CreateOrbitControls(info viewer.OrbitControlsInfo) viewer.Node {
	controls := addons.Get("OrbitControls").New(
		refOf(info.Camera),
		refOf(info.Renderer).Get("domElement"),
	)
	controls.Set("maxPolarAngle", info.MaxPolarAngle.Radians())
	controls.Set("minDistance", info.MinDistance)
	controls.Set("maxDistance", info.MaxDistance)
	return &node{goObject{controls}}
}

func (b *Backend) CreateBox(info viewer.BoxInfo) viewer.Node {
	mesh := THREE.Get("Mesh").New(
		THREE.Get("BoxGeometry").New(),
		THREE.Get("MeshBasicMaterial").New(map[string]any{
			"color": int(info.Color),
		}),
	)
	return &node{goObject{mesh}}
}

func (b *Backend) CreatePanel() viewer.Panel {
	return newPanel(addons.Get("GUI").New())
}

func (b *Backend) RequestFrame(cb func()) {
	var jsFunc js.Func
	jsFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		jsFunc.Release()
		cb()
		return nil
	})
	window.Call("requestAnimationFrame", jsFunc)
}

func setPosition(object js.Value, position dprec.Vec3) {
	object.Get("position").Call("set", position.X, position.Y, position.Z)
}

type node struct {
	goObject
}

func (n *node) Add(child viewer.Node) {
	n.jsValue.Call("add", refOf(child))
}

type renderer3 struct {
	goObject
}

func (r *renderer3) SetToneMappingExposure(value float64) {
	r.jsValue.Set("toneMappingExposure", value)
}

type bloomPass struct {
	goObject
}

func (p *bloomPass) SetThreshold(value float64) {
	p.jsValue.Set("threshold", value)
}

func (p *bloomPass) SetStrength(value float64) {
	p.jsValue.Set("strength", value)
}

func (p *bloomPass) SetRadius(value float64) {
	p.jsValue.Set("radius", value)
}

type composer3 struct {
	goObject
}

func (c *composer3) Render() {
	c.jsValue.Call("render")
}

type material3 struct {
	goObject
}

func (m *material3) SetColor(color schema.Color) {
	m.jsValue.Get("color").Call("setHex", int(color))
}

type meshObject struct {
	goObject
}

func (m *meshObject) SetMaterial(material viewer.Material) {
	m.jsValue.Set("material", refOf(material))
}

type model struct {
	goObject
}

func (m *model) Traverse(visit func(mesh viewer.Mesh)) {
	jsFunc := js.FuncOf(func(this js.Value, args []js.Value) any {
		child := args[0]
		if child.Get("isMesh").Truthy() {
			visit(&meshObject{goObject{child}})
		}
		return nil
	})
	defer jsFunc.Release()
	m.jsValue.Call("traverse", jsFunc)
}

func (m *model) SetCastShadow(cast bool) {
	m.jsValue.Set("castShadow", cast)
}
