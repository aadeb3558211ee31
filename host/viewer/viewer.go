package viewer

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/neon-viewer/schema"
)

type Config struct {
	Params    schema.Params
	ModelPath string
	ModelFile string
}

func DefaultConfig() Config {
	return Config{
		Params:    schema.DefaultParams(),
		ModelPath: "/assets/",
		ModelFile: "text2.obj",
	}
}

type Viewer struct {
	logger *slog.Logger
	params schema.Params

	scene    Scene
	camera   Node
	renderer Renderer
	bloom    BloomPass
	composer Composer
	material Material
	model    opt.T[Model]
	cube     Node
	loop     *Loop
}

// New builds the scene, the post-processing pipeline and the control panel,
// and starts loading the model. The model is added to the scene whenever the
// load completes; a failed load leaves the rest of the viewer untouched.
func New(backend Backend, cfg Config, logger *slog.Logger) *Viewer {
	v := &Viewer{
		logger: logger,
		params: cfg.Params,
	}
	width, height := backend.Viewport()

	v.scene = backend.CreateScene(SceneInfo{
		Background: 0x000000,
	})
	v.camera = backend.CreateCamera(CameraInfo{
		FieldOfView: dprec.Degrees(75),
		Aspect:      float64(width) / float64(max(height, 1)),
		Near:        0.1,
		Far:         1000,
		Position:    dprec.Vec3{X: 0, Y: 5, Z: 40},
	})
	v.renderer = backend.CreateRenderer(RendererInfo{
		Width:  width,
		Height: height,
	})
	backend.CreateClock()

	v.scene.Add(backend.CreateAmbientLight(AmbientLightInfo{
		Color:     0xcccccc,
		Intensity: 0.4,
	}))
	v.scene.Add(backend.CreatePointLight(PointLightInfo{
		Color:      0xffffff,
		Intensity:  1,
		Distance:   200,
		Position:   dprec.Vec3{X: 0, Y: 5, Z: 100},
		CastShadow: true,
	}))

	v.scene.Add(backend.CreateGround(GroundInfo{
		Width:      2000,
		Height:     2000,
		Color:      0x000000,
		DepthWrite: false,
		RotationX:  dprec.Radians(-math.Pi / 2),
	}))
	v.scene.Add(backend.CreateGrid(GridInfo{
		Size:      200,
		Divisions: 40,
		Color:     0x808080,
		Opacity:   0.2,
	}))

	v.bloom = backend.CreateBloomPass(BloomPassInfo{
		Width:     width,
		Height:    height,
		Strength:  1.5,
		Radius:    0.4,
		Threshold: 0.85,
	})
	if v.params.BloomThreshold.Specified {
		v.bloom.SetThreshold(v.params.BloomThreshold.Value)
	}
	if v.params.BloomStrength.Specified {
		v.bloom.SetStrength(v.params.BloomStrength.Value)
	}
	if v.params.BloomRadius.Specified {
		v.bloom.SetRadius(v.params.BloomRadius.Value)
	}
	v.composer = backend.CreateComposer(ComposerInfo{
		Renderer: v.renderer,
		Scene:    v.scene,
		Camera:   v.camera,
		Bloom:    v.bloom,
		Width:    width,
		Height:   height,
	})

	v.material = backend.CreateStandardMaterial(MaterialInfo{
		Color: v.params.GlowColor,
	})
	v.loadModel(backend, cfg.ModelPath, cfg.ModelFile)

	backend.CreateOrbitControls(OrbitControlsInfo{
		Camera:        v.camera,
		Renderer:      v.renderer,
		MaxPolarAngle: dprec.Radians(math.Pi * 0.5),
		MinDistance:   1,
		MaxDistance:   100,
	})

	// built but never added to the scene
	v.cube = backend.CreateBox(BoxInfo{
		Color: schema.Color(rand.Int31n(0x1000000)),
	})

	v.bindControls(backend.CreatePanel())

	v.loop = NewLoop(backend, v.composer, logger)
	return v
}

func (v *Viewer) loadModel(backend Backend, path, file string) {
	logger := v.logger.With(slog.String("model", path+file))
	backend.LoadModel(ModelInfo{
		Path: path,
		File: file,
	}).Then(func(model Model) {
		model.Traverse(func(mesh Mesh) {
			mesh.SetMaterial(v.material)
		})
		model.SetCastShadow(true)
		v.scene.Add(model)
		v.model = opt.V(model)
		logger.Info("Model loaded")
	}).Catch(func(err error) {
		logger.Error("Model load failed",
			slog.String("error", err.Error()),
		)
	})
}

// Run starts the render loop. Frames render without the model until its
// load completes.
func (v *Viewer) Run() {
	v.loop.Start()
}

func (v *Viewer) Params() schema.Params {
	return v.params
}

func (v *Viewer) Model() (Model, bool) {
	return v.model.Value, v.model.Specified
}

func (v *Viewer) Loop() *Loop {
	return v.loop
}
