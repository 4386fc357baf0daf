package entities

// ClassificacaoMotivo maps a numeric return-reason code (classificação de
// devolução da Compe) to its human label. Read-only reference data consumed
// by the check forms.

type ClassificacaoMotivo struct {
	Classificacao int    `json:"classificacao"`
	Motivo        string `json:"motivo"`
	Descricao     string `json:"descricao,omitempty"`
}

var Classificacoes = []ClassificacaoMotivo{
	{Classificacao: 11, Motivo: "Cheque sem fundos", Descricao: "1ª apresentação"},
	{Classificacao: 12, Motivo: "Cheque sem fundos", Descricao: "2ª apresentação"},
	{Classificacao: 13, Motivo: "Conta encerrada"},
	{Classificacao: 14, Motivo: "Prática espúria"},
	{Classificacao: 20, Motivo: "Cheque sustado ou revogado", Descricao: "Em virtude de roubo, furto ou extravio de folhas de cheque em branco"},
	{Classificacao: 21, Motivo: "Cheque sustado ou revogado"},
	{Classificacao: 22, Motivo: "Divergência ou insuficiência de assinatura"},
	{Classificacao: 23, Motivo: "Cheques emitidos por entidades e órgãos da administração pública federal direta e indireta", Descricao: "Em desacordo com os requisitos constantes do art. 74, § 2º, do Decreto-Lei nº 200, de 25.2.1967"},
	{Classificacao: 24, Motivo: "Bloqueio judicial ou determinação do Banco Central do Brasil"},
	{Classificacao: 25, Motivo: "Cancelamento de talonário pelo participante destinatário"},
	{Classificacao: 26, Motivo: "Inoperância temporária de transporte"},
	{Classificacao: 27, Motivo: "Feriado municipal não previsto"},
	{Classificacao: 28, Motivo: "Cheque sustado ou revogado", Descricao: "Em virtude de roubo, furto ou extravio"},
	{Classificacao: 30, Motivo: "Furto ou roubo de cheque"},
	{Classificacao: 70, Motivo: "Sustação ou revogação provisória"},
	{Classificacao: 31, Motivo: "Erro formal", Descricao: "Sem data de emissão, com o mês grafado numericamente, ausência de assinatura ou não registro do valor por extenso"},
	{Classificacao: 33, Motivo: "Divergência de endosso"},
	{Classificacao: 34, Motivo: "Cheque apresentado por participante que não o indicado no cruzamento em preto", Descricao: "Sem o endosso-mandato"},
	{Classificacao: 35, Motivo: "Cheque fraudado", Descricao: "Emitido sem prévio controle ou responsabilidade do participante ('cheque universal'), adulteração da praça sacada, ou rasura no preenchimento"},
	{Classificacao: 37, Motivo: "Registro inconsistente"},
	{Classificacao: 38, Motivo: "Assinatura digital ausente ou inválida"},
	{Classificacao: 39, Motivo: "Imagem fora do padrão"},
	{Classificacao: 40, Motivo: "Moeda inválida"},
	{Classificacao: 41, Motivo: "Cheque apresentado a participante que não o destinatário"},
	{Classificacao: 42, Motivo: "Cheque não compensável na sessão ou sistema de compensação em que apresentado"},
	{Classificacao: 43, Motivo: "Cheque devolvido anteriormente pelos motivos 21, 22, 23, 24, 31 e 34", Descricao: "Não passível de reapresentação em virtude de persistir o motivo da devolução"},
	{Classificacao: 44, Motivo: "Cheque prescrito"},
	{Classificacao: 45, Motivo: "Cheque emitido por entidade obrigada a realizar movimentação e utilização de recursos financeiros do Tesouro Nacional", Descricao: "Mediante Ordem Bancária"},
	{Classificacao: 48, Motivo: "Cheque de valor superior a R$ 100,00 (cem reais), emitido sem a identificação do beneficiário"},
	{Classificacao: 49, Motivo: "Remessa nula, caracterizada pela reapresentação de cheque devolvido pelos motivos 12, 13, 14, 20, 25, 28, 30, 35, 43, 44 e 45"},
	{Classificacao: 59, Motivo: "Informação essencial faltante ou inconsistente não passível de verificação pelo participante remetente", Descricao: "E não enquadrada no motivo 31"},
	{Classificacao: 60, Motivo: "Instrumento inadequado para a finalidade"},
	{Classificacao: 61, Motivo: "Item não compensável"},
	{Classificacao: 64, Motivo: "Arquivo lógico não processado / processado parcialmente"},
	{Classificacao: 71, Motivo: "Inadimplemento contratual da cooperativa de crédito no acordo de compensação"},
	{Classificacao: 72, Motivo: "Contrato de compensação encerrado"},
}
