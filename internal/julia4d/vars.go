package julia4d

var (
	Debug          = false // set to true for verbose debug output and ray logs
	AlwaysBVH      = false // set to true to always use BVH for nearest hit calculations
	NeverBVH       = false // set to true to never use BVH for nearest hit calculations
	NearestHitFunc = nearestHitBVH
	// Compile time checks to ensure that interfaces are implemented by all required types
	_ Object     = (*Fractal)(nil)
	_ Clip       = (*Fractal)(nil)
	_ Clip       = (*ClipSphere)(nil)
	_ Clip       = (*ClipPlane)(nil)
	_ Rules      = juliaRules{}
	_ Rules      = z3Rules{}
	_ Rules      = hcSqrRules{}
	_ Rules      = hcCubeRules{}
	_ Rules      = hcReciprocalRules{}
	_ Rules      = hcFuncRules{}
	_ gradienter = juliaRules{}
	_ gradienter = z3Rules{}
	_ hcMapper   = hcSqrRules{}
	_ hcMapper   = hcCubeRules{}
	_ hcMapper   = hcReciprocalRules{}
	_ hcMapper   = hcFuncRules{}
	_ gradienter = hcFuncRules{}
)
