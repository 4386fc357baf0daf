package entities

// Arquivo is an uploaded file staged by a form (check attachment, signed
// receipt). The usecase decides the storage path; handlers only carry the
// bytes through.

type Arquivo struct {
	Nome        string
	ContentType string
	Conteudo    []byte
}
