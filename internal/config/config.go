package config

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Neural Sphere - T: theme, P: snapshot, F1: HUD, Esc/Q: quit"
	TPS          = 60

	FrameRingSize = 120

	// Sphere parameters
	ParticleCount = 60
	SphereRadius  = 180
	FocalDistance = 300
	RotationSpeed = 0.002 // rad per frame on both axes
	PointerScale  = 1e-4

	// Edge parameters
	ConnectionDistance = 120
	EdgeBaseOpacity    = 0.15
	EdgeWidth          = 0.5

	// Node parameters
	NodeRadius        = 1.5
	NodeOpacityFactor = 0.8

	// Headless output
	GIFDelay = 2 // 100ths of a second per frame
)
