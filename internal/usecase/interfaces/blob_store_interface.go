package interfaces

import "context"

// IBlobStore abstracts the object storage used for check attachments, remessa
// manifests and signed receipts.
//
// Path conventions (kept from the custody flows):
//   - cheques/anexos/<chequeId>/<filename>
//   - remessas/<remessaId>/<filename>
//   - estornos/<estornoId>/anexos/<filename>
//
// Upload returns a public download URL; Delete takes that URL back.

type IBlobStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}
