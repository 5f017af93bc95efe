package ports

import "github.com/mbellido/portions/internal/domain"

// ScaledStore persists scaled-recipe artifacts for later reference.
type ScaledStore interface {
	SaveScaled(art domain.ScaledArtifact) (id string, err error)
}
