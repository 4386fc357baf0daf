package interfaces

import "custodia_cheques/internal/domain/entities"

// IManifestoGenerator renders the remessa manifest document (protocol, date,
// issuer and the check table with a signature line). The usecase only needs
// the bytes; it uploads them through IBlobStore.

type IManifestoGenerator interface {
	GerarManifesto(r entities.Remessa) ([]byte, error)
}
