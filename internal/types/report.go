package types

type TargetDependants struct {
	Target     string
	Dependants []string
}

// Wave is one merge wave: libraries sharing the same topological level.
// Higher levels sit further upstream and must be merged first.
type Wave struct {
	Level     int
	Libraries []string
}

type DependantsReport struct {
	Targets []TargetDependants
	Waves   []Wave
}
