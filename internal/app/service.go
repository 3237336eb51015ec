package app

import (
	"distro-collections/internal/adapters"
	"distro-collections/internal/ports"
)

type Service struct {
	Collections  ports.CollectionPort
	VersionIndex ports.VersionIndexPort
	Libraries    ports.LibraryIndexPort
	Retargeter   ports.RetargetPort
}

func NewService() Service {
	collections := adapters.NewCollectionFileAdapter()
	return Service{
		Collections:  collections,
		VersionIndex: adapters.NewVersionDirAdapter(),
		Libraries:    adapters.NewLibraryDirAdapter(collections),
		Retargeter:   adapters.NewRetargetFileAdapter(),
	}
}
