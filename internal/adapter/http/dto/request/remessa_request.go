package request

// CriarRemessaRequest selects the office checks that will travel together.
type CriarRemessaRequest struct {
	ChequeIDs []string `json:"cheque_ids" binding:"required"`
}

// FinalizarRemessaForm is the multipart payload for the terminal transition;
// the signed receipt travels as the documento_assinado file part.
type FinalizarRemessaForm struct {
	RecebidoPor string `form:"recebidoPor"`
}
