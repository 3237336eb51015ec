package ports

import "distro-collections/internal/types"

type RetargetPort interface {
	Plan(dir string, library string, from string, to string) ([]types.RetargetChange, error)
	Apply(changes []types.RetargetChange) error
}
