package viewer

import (
	"errors"
	"io"
	"log/slog"

	"github.com/nobonobo/neon-viewer/schema"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeNode struct {
	kind string
	info any
}

type fakeScene struct {
	info  SceneInfo
	nodes []Node
}

func (s *fakeScene) Add(node Node) {
	s.nodes = append(s.nodes, node)
}

func (s *fakeScene) kinds() []string {
	var result []string
	for _, node := range s.nodes {
		switch n := node.(type) {
		case *fakeNode:
			result = append(result, n.kind)
		case *fakeModel:
			result = append(result, "model")
		}
	}
	return result
}

type fakeRenderer struct {
	info     RendererInfo
	exposure []float64
}

func (r *fakeRenderer) SetToneMappingExposure(value float64) {
	r.exposure = append(r.exposure, value)
}

type fakeMaterial struct {
	colors []schema.Color
}

func (m *fakeMaterial) SetColor(color schema.Color) {
	m.colors = append(m.colors, color)
}

type fakeMesh struct {
	material Material
}

func (m *fakeMesh) SetMaterial(material Material) {
	m.material = material
}

type fakeModel struct {
	meshes     []*fakeMesh
	castShadow bool
}

func (m *fakeModel) Traverse(visit func(mesh Mesh)) {
	for _, mesh := range m.meshes {
		visit(mesh)
	}
}

func (m *fakeModel) SetCastShadow(cast bool) {
	m.castShadow = cast
}

type fakeBloom struct {
	info      BloomPassInfo
	threshold []float64
	strength  []float64
	radius    []float64
}

func (b *fakeBloom) SetThreshold(value float64) { b.threshold = append(b.threshold, value) }
func (b *fakeBloom) SetStrength(value float64)  { b.strength = append(b.strength, value) }
func (b *fakeBloom) SetRadius(value float64)    { b.radius = append(b.radius, value) }

type fakeComposer struct {
	info    ComposerInfo
	renders int
	panicAt map[int]bool
}

func (c *fakeComposer) Render() {
	c.renders++
	if c.panicAt[c.renders] {
		panic("context lost")
	}
}

type fakeSlider struct {
	control  Control
	value    float64
	onChange func(float64)
}

type fakeColor struct {
	control  Control
	value    schema.Color
	onChange func(schema.Color)
}

type fakePanel struct {
	sliders []fakeSlider
	colors  []fakeColor
}

func (p *fakePanel) AddSlider(control Control, value float64, onChange func(float64)) {
	p.sliders = append(p.sliders, fakeSlider{control: control, value: value, onChange: onChange})
}

func (p *fakePanel) AddColor(control Control, value schema.Color, onChange func(schema.Color)) {
	p.colors = append(p.colors, fakeColor{control: control, value: value, onChange: onChange})
}

func (p *fakePanel) slider(name string) fakeSlider {
	for _, s := range p.sliders {
		if s.control.Name == name {
			return s
		}
	}
	panic("no slider " + name)
}

// fakePromise settles when the test calls resolve or reject.
type fakePromise struct {
	onThen  []func(Model)
	onCatch []func(error)
}

func (p *fakePromise) Then(cb func(Model)) Promise[Model] {
	p.onThen = append(p.onThen, cb)
	return p
}

func (p *fakePromise) Catch(cb func(error)) Promise[Model] {
	p.onCatch = append(p.onCatch, cb)
	return p
}

func (p *fakePromise) resolve(model Model) {
	for _, cb := range p.onThen {
		cb(model)
	}
}

func (p *fakePromise) reject(err error) {
	for _, cb := range p.onCatch {
		cb(err)
	}
}

type fakeBackend struct {
	width, height int

	scene     *fakeScene
	camera    *fakeNode
	renderer  *fakeRenderer
	clocks    int
	bloom     *fakeBloom
	composer  *fakeComposer
	materials []*fakeMaterial
	modelInfo ModelInfo
	promise   *fakePromise
	orbit     OrbitControlsInfo
	boxes     []BoxInfo
	panel     *fakePanel
	frames    []func()
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		width:   1280,
		height:  800,
		promise: &fakePromise{},
		panel:   &fakePanel{},
	}
}

func (b *fakeBackend) Viewport() (int, int) {
	return b.width, b.height
}

func (b *fakeBackend) CreateScene(info SceneInfo) Scene {
	b.scene = &fakeScene{info: info}
	return b.scene
}

func (b *fakeBackend) CreateCamera(info CameraInfo) Node {
	b.camera = &fakeNode{kind: "camera", info: info}
	return b.camera
}

func (b *fakeBackend) CreateRenderer(info RendererInfo) Renderer {
	b.renderer = &fakeRenderer{info: info}
	return b.renderer
}

func (b *fakeBackend) CreateClock() Node {
	b.clocks++
	return &fakeNode{kind: "clock"}
}

func (b *fakeBackend) CreateAmbientLight(info AmbientLightInfo) Node {
	return &fakeNode{kind: "ambient", info: info}
}

func (b *fakeBackend) CreatePointLight(info PointLightInfo) Node {
	return &fakeNode{kind: "point", info: info}
}

func (b *fakeBackend) CreateGround(info GroundInfo) Node {
	return &fakeNode{kind: "ground", info: info}
}

func (b *fakeBackend) CreateGrid(info GridInfo) Node {
	return &fakeNode{kind: "grid", info: info}
}

func (b *fakeBackend) CreateBloomPass(info BloomPassInfo) BloomPass {
	b.bloom = &fakeBloom{info: info}
	return b.bloom
}

func (b *fakeBackend) CreateComposer(info ComposerInfo) Composer {
	b.composer = &fakeComposer{info: info}
	return b.composer
}

func (b *fakeBackend) CreateStandardMaterial(info MaterialInfo) Material {
	material := &fakeMaterial{colors: []schema.Color{info.Color}}
	b.materials = append(b.materials, material)
	return material
}

func (b *fakeBackend) LoadModel(info ModelInfo) Promise[Model] {
	b.modelInfo = info
	return b.promise
}

func (b *fakeBackend) CreateOrbitControls(info OrbitControlsInfo) Node {
	b.orbit = info
	return &fakeNode{kind: "orbit", info: info}
}

func (b *fakeBackend) CreateBox(info BoxInfo) Node {
	b.boxes = append(b.boxes, info)
	return &fakeNode{kind: "box", info: info}
}

func (b *fakeBackend) CreatePanel() Panel {
	return b.panel
}

func (b *fakeBackend) RequestFrame(cb func()) {
	b.frames = append(b.frames, cb)
}

// step runs every frame callback queued so far, like one display refresh.
func (b *fakeBackend) step() {
	pending := b.frames
	b.frames = nil
	for _, cb := range pending {
		cb()
	}
}

var errNotFound = errors.New("404 Not Found")
