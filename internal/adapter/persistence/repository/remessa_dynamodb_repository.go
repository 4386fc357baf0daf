package repository

import (
	"context"
	"errors"
	"time"

	"custodia_cheques/internal/domain/entities"
	"custodia_cheques/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRemessasTableName = "remessas"
	remessasProtocoloIndex   = "protocolo-index"
)

type chequeResumoItem struct {
	ID           string `dynamodbav:"id"`
	NumeroCheque string `dynamodbav:"numero_cheque"`
	Banco        string `dynamodbav:"banco"`
	Vencimento   string `dynamodbav:"vencimento,omitempty"`
	Nome         string `dynamodbav:"nome"`
	Valor        string `dynamodbav:"valor"`
	Regiao       string `dynamodbav:"regiao,omitempty"`
}

type remessaItem struct {
	ID                   string             `dynamodbav:"id"`
	Protocolo            string             `dynamodbav:"protocolo"`
	DataRemessa          string             `dynamodbav:"data_remessa"`
	EmitidoPor           string             `dynamodbav:"emitido_por"`
	Cheques              []chequeResumoItem `dynamodbav:"cheques"`
	Status               string             `dynamodbav:"status"`
	DocumentoPdfURL      string             `dynamodbav:"documento_pdf_url,omitempty"`
	DocumentoAssinadoURL string             `dynamodbav:"documento_assinado_url,omitempty"`
	RecebidoPor          string             `dynamodbav:"recebido_por,omitempty"`
	Versao               int64              `dynamodbav:"versao"`
	Log                  []logEntryItem     `dynamodbav:"log,omitempty"`
}

// RemessaDynamoRepository persists shipment batches in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: protocolo-index (PK: protocolo) — collision check on creation
//
// The embedded cheque list is only rewritten through the dual-write
// transaction (see CustodiaTransacaoDynamoRepository), guarded by the versao
// counter. Everything here appends via list_append or touches scalar fields.

type RemessaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRemessaRepository = (*RemessaDynamoRepository)(nil)

func NewRemessaDynamoRepository(ddb *dynamodb.Client) *RemessaDynamoRepository {
	return &RemessaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REMESSAS_TABLE", defaultRemessasTableName),
	}
}

func (r *RemessaDynamoRepository) Create(ctx context.Context, rem entities.Remessa) (entities.Remessa, error) {
	av, err := attributevalue.MarshalMap(toRemessaItem(rem))
	if err != nil {
		return entities.Remessa{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Remessa{}, err
	}
	return rem, nil
}

func (r *RemessaDynamoRepository) GetByID(ctx context.Context, id string) (entities.Remessa, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Remessa{}, err
	}
	if len(out.Item) == 0 {
		return entities.Remessa{}, nil
	}

	var it remessaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Remessa{}, err
	}
	return fromRemessaItem(it), nil
}

func (r *RemessaDynamoRepository) GetByProtocolo(ctx context.Context, protocolo string) (entities.Remessa, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(remessasProtocoloIndex),
		KeyConditionExpression: aws.String("protocolo = :protocolo"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":protocolo": &types.AttributeValueMemberS{Value: protocolo},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Remessa{}, err
	}
	if len(out.Items) == 0 {
		return entities.Remessa{}, nil
	}

	var it remessaItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Remessa{}, err
	}
	return fromRemessaItem(it), nil
}

func (r *RemessaDynamoRepository) List(ctx context.Context) ([]entities.Remessa, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	remessas := make([]entities.Remessa, 0, len(out.Items))
	for _, raw := range out.Items {
		var it remessaItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		remessas = append(remessas, fromRemessaItem(it))
	}
	return remessas, nil
}

func (r *RemessaDynamoRepository) SetDocumentoPdfURL(ctx context.Context, id, url string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #documento_pdf_url = :url"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#documento_pdf_url": "documento_pdf_url",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":url": &types.AttributeValueMemberS{Value: url},
		},
	})
	return err
}

// Finalizar is guarded by status <> Finalizada in the store itself, so the
// terminal transition holds even when two finalizes race. The conditional
// failure comes back as an empty remessa, following the repository
// convention for "nothing to update".
func (r *RemessaDynamoRepository) Finalizar(ctx context.Context, id, documentoAssinadoURL, recebidoPor string, entrada entities.LogEntry) (entities.Remessa, error) {
	entradas, err := marshalEntradasLog(entrada)
	if err != nil {
		return entities.Remessa{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :finalizada"),
		UpdateExpression: aws.String("SET #status = :finalizada, #documento_assinado_url = :doc, #recebido_por = :recebido, " +
			"#log = list_append(if_not_exists(#log, :vazio), :entradas)"),
		ExpressionAttributeNames: map[string]string{
			"#id":                     "id",
			"#status":                 "status",
			"#documento_assinado_url": "documento_assinado_url",
			"#recebido_por":           "recebido_por",
			"#log":                    "log",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":finalizada": &types.AttributeValueMemberS{Value: string(entities.RemessaStatusFinalizada)},
			":doc":        &types.AttributeValueMemberS{Value: documentoAssinadoURL},
			":recebido":   &types.AttributeValueMemberS{Value: recebidoPor},
			":vazio":      listaVazia(),
			":entradas":   entradas,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Remessa{}, nil
		}
		return entities.Remessa{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Remessa{}, nil
	}

	var it remessaItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Remessa{}, err
	}
	return fromRemessaItem(it), nil
}

func (r *RemessaDynamoRepository) AppendCheque(ctx context.Context, id string, resumo entities.ChequeResumo, entrada entities.LogEntry) error {
	resumos, err := attributevalue.MarshalList([]chequeResumoItem{toChequeResumoItem(resumo)})
	if err != nil {
		return err
	}
	entradas, err := marshalEntradasLog(entrada)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :finalizada"),
		UpdateExpression: aws.String("SET #cheques = list_append(if_not_exists(#cheques, :vazio), :resumos), " +
			"#log = list_append(if_not_exists(#log, :vazio), :entradas)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#status":  "status",
			"#cheques": "cheques",
			"#log":     "log",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":finalizada": &types.AttributeValueMemberS{Value: string(entities.RemessaStatusFinalizada)},
			":vazio":      listaVazia(),
			":resumos":    &types.AttributeValueMemberL{Value: resumos},
			":entradas":   entradas,
		},
	})
	return err
}

func toChequeResumoItem(c entities.ChequeResumo) chequeResumoItem {
	return chequeResumoItem{
		ID:           c.ID,
		NumeroCheque: c.NumeroCheque,
		Banco:        c.Banco,
		Vencimento:   c.Vencimento,
		Nome:         c.Nome,
		Valor:        decimalToString(c.Valor),
		Regiao:       c.Regiao,
	}
}

func fromChequeResumoItem(it chequeResumoItem) entities.ChequeResumo {
	return entities.ChequeResumo{
		ID:           it.ID,
		NumeroCheque: it.NumeroCheque,
		Banco:        it.Banco,
		Vencimento:   it.Vencimento,
		Nome:         it.Nome,
		Valor:        decimalFromString(it.Valor),
		Regiao:       it.Regiao,
	}
}

func toRemessaItem(r entities.Remessa) remessaItem {
	cheques := make([]chequeResumoItem, 0, len(r.Cheques))
	for _, c := range r.Cheques {
		cheques = append(cheques, toChequeResumoItem(c))
	}
	return remessaItem{
		ID:                   r.ID,
		Protocolo:            r.Protocolo,
		DataRemessa:          r.DataRemessa.UTC().Format(time.RFC3339Nano),
		EmitidoPor:           r.EmitidoPor,
		Cheques:              cheques,
		Status:               string(r.Status),
		DocumentoPdfURL:      r.DocumentoPdfURL,
		DocumentoAssinadoURL: r.DocumentoAssinadoURL,
		RecebidoPor:          r.RecebidoPor,
		Versao:               r.Versao,
		Log:                  toLogEntryItems(r.Log),
	}
}

func fromRemessaItem(it remessaItem) entities.Remessa {
	cheques := make([]entities.ChequeResumo, 0, len(it.Cheques))
	for _, c := range it.Cheques {
		cheques = append(cheques, fromChequeResumoItem(c))
	}
	return entities.Remessa{
		ID:                   it.ID,
		Protocolo:            it.Protocolo,
		DataRemessa:          parseTempo(it.DataRemessa),
		EmitidoPor:           it.EmitidoPor,
		Cheques:              cheques,
		Status:               entities.RemessaStatus(it.Status),
		DocumentoPdfURL:      it.DocumentoPdfURL,
		DocumentoAssinadoURL: it.DocumentoAssinadoURL,
		RecebidoPor:          it.RecebidoPor,
		Versao:               it.Versao,
		Log:                  fromLogEntryItems(it.Log),
	}
}
