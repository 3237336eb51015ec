package ports

import "distro-collections/internal/types"

type CollectionPort interface {
	Load(path string) (types.Collection, error)
}
