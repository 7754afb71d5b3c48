package julia4d

const (
	DefaultIterations   = 20
	DefaultWidth        = 64
	DefaultHeight       = 32
	ProbeRays           = 10_000
	AABBBVHMaxLeafSize  = 2
	AABBBVHFromNObjects = 4 // minimum number of objects to use BVH of AABBs, otherwise just iterate all objects on the scene
	ShadeRamp           = " .:-=+*#%@"
	// hot-loop constants
	fractalTolerance      = 1e-7  // bisection bracket and start offset
	hypercomplexTolerance = 1e-8  // minimum slope accepted by the hypercomplex distance estimate
	exitPad               = 1e-7  // added to quaternion bounding radius and exit value
	epsSphere             = 1e-10 // bounding sphere grazing threshold
	tangentLimit          = 1e100
)
