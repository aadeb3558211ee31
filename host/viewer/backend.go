package viewer

import (
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/neon-viewer/schema"
)

// Node is an opaque scene-graph object owned by the Backend.
type Node any

type Scene interface {
	Add(node Node)
}

type Renderer interface {
	SetToneMappingExposure(value float64)
}

type Material interface {
	SetColor(color schema.Color)
}

type Mesh interface {
	SetMaterial(material Material)
}

// Model is a loaded asset. Traverse visits every mesh in its hierarchy.
type Model interface {
	Traverse(visit func(mesh Mesh))
	SetCastShadow(cast bool)
}

type BloomPass interface {
	SetThreshold(value float64)
	SetStrength(value float64)
	SetRadius(value float64)
}

type Composer interface {
	Render()
}

type Panel interface {
	AddSlider(control Control, value float64, onChange func(value float64))
	AddColor(control Control, value schema.Color, onChange func(color schema.Color))
}

type Promise[T any] interface {
	Then(cb func(value T)) Promise[T]
	Catch(cb func(err error)) Promise[T]
}

// Backend constructs the render objects of the viewer. Every Create call
// happens once, during New.
type Backend interface {
	Viewport() (width, height int)
	CreateScene(info SceneInfo) Scene
	CreateCamera(info CameraInfo) Node
	CreateRenderer(info RendererInfo) Renderer
	CreateClock() Node
	CreateAmbientLight(info AmbientLightInfo) Node
	CreatePointLight(info PointLightInfo) Node
	CreateGround(info GroundInfo) Node
	CreateGrid(info GridInfo) Node
	CreateBloomPass(info BloomPassInfo) BloomPass
	CreateComposer(info ComposerInfo) Composer
	CreateStandardMaterial(info MaterialInfo) Material
	LoadModel(info ModelInfo) Promise[Model]
	CreateOrbitControls(info OrbitControlsInfo) Node
	CreateBox(info BoxInfo) Node
	CreatePanel() Panel
	RequestFrame(cb func())
}

type SceneInfo struct {
	Background schema.Color
}

type CameraInfo struct {
	FieldOfView dprec.Angle
	Aspect      float64
	Near        float64
	Far         float64
	Position    dprec.Vec3
}

type RendererInfo struct {
	Width  int
	Height int
}

type AmbientLightInfo struct {
	Color     schema.Color
	Intensity float64
}

type PointLightInfo struct {
	Color      schema.Color
	Intensity  float64
	Distance   float64
	Position   dprec.Vec3
	CastShadow bool
}

type GroundInfo struct {
	Width      float64
	Height     float64
	Color      schema.Color
	DepthWrite bool
	RotationX  dprec.Angle
}

type GridInfo struct {
	Size      float64
	Divisions int
	Color     schema.Color
	Opacity   float64
}

type BloomPassInfo struct {
	Width     int
	Height    int
	Strength  float64
	Radius    float64
	Threshold float64
}

type ComposerInfo struct {
	Renderer Renderer
	Scene    Scene
	Camera   Node
	Bloom    BloomPass
	Width    int
	Height   int
}

type MaterialInfo struct {
	Color schema.Color
}

type ModelInfo struct {
	Path string
	File string
}

type OrbitControlsInfo struct {
	Camera        Node
	Renderer      Renderer
	MaxPolarAngle dprec.Angle
	MinDistance   float64
	MaxDistance   float64
}

type BoxInfo struct {
	Color schema.Color
}
