package repository

import (
	"context"
	"time"

	"custodia_cheques/internal/domain/entities"
	"custodia_cheques/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstornosTableName        = "estornos"
	defaultEstornosChequesTableName = "estornos_cheques"
)

type estornoItem struct {
	ID           string         `dynamodbav:"id"`
	DataRetirada string         `dynamodbav:"data_retirada"`
	QuemRetirou  string         `dynamodbav:"quem_retirou"`
	Protocolo    string         `dynamodbav:"protocolo"`
	Status       string         `dynamodbav:"status"`
	CreatedAt    string         `dynamodbav:"created_at"`
	Log          []logEntryItem `dynamodbav:"log,omitempty"`
}

type estornoChequeItem struct {
	EstornoID       string `dynamodbav:"estorno_id"`
	ID              string `dynamodbav:"id"`
	Leitora         string `dynamodbav:"leitora,omitempty"`
	NumeroCheque    string `dynamodbav:"numero_cheque"`
	Nome            string `dynamodbav:"nome"`
	CPF             string `dynamodbav:"cpf,omitempty"`
	Valor           string `dynamodbav:"valor"`
	MotivoDevolucao string `dynamodbav:"motivo_devolucao,omitempty"`
	NumeroOperacao  string `dynamodbav:"numero_operacao,omitempty"`
	AnexoURL        string `dynamodbav:"anexo_url,omitempty"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// EstornoDynamoRepository persists reversal cases and their line items.
//
// Table requirements:
//   - estornos: PK id (string)
//   - estornos_cheques: PK estorno_id (string), SK id (string)

type EstornoDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	itensTableName string
}

var _ interfaces.IEstornoRepository = (*EstornoDynamoRepository)(nil)

func NewEstornoDynamoRepository(ddb *dynamodb.Client) *EstornoDynamoRepository {
	return &EstornoDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ESTORNOS_TABLE", defaultEstornosTableName),
		itensTableName: getenvDefault("ESTORNOS_CHEQUES_TABLE", defaultEstornosChequesTableName),
	}
}

func (r *EstornoDynamoRepository) Create(ctx context.Context, e entities.Estorno) (entities.Estorno, error) {
	av, err := attributevalue.MarshalMap(toEstornoItem(e))
	if err != nil {
		return entities.Estorno{}, err
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
		return entities.Estorno{}, err
	}
	return e, nil
}

func (r *EstornoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estorno, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estorno{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estorno{}, nil
	}

	var it estornoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estorno{}, err
	}
	return fromEstornoItem(it), nil
}

func (r *EstornoDynamoRepository) List(ctx context.Context) ([]entities.Estorno, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	estornos := make([]entities.Estorno, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estornoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		estornos = append(estornos, fromEstornoItem(it))
	}
	return estornos, nil
}

func (r *EstornoDynamoRepository) AddCheque(ctx context.Context, item entities.EstornoCheque) (entities.EstornoCheque, error) {
	av, err := attributevalue.MarshalMap(toEstornoChequeItem(item))
	if err != nil {
		return entities.EstornoCheque{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.itensTableName),
		Item:      av,
	})
	if err != nil {
		return entities.EstornoCheque{}, err
	}
	return item, nil
}

func (r *EstornoDynamoRepository) ListCheques(ctx context.Context, estornoID string) ([]entities.EstornoCheque, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itensTableName),
		KeyConditionExpression: aws.String("estorno_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estornoID},
		},
	})
	if err != nil {
		return nil, err
	}

	cheques := make([]entities.EstornoCheque, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estornoChequeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		cheques = append(cheques, fromEstornoChequeItem(it))
	}
	return cheques, nil
}

func (r *EstornoDynamoRepository) RemoveCheque(ctx context.Context, estornoID, chequeID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.itensTableName),
		Key: map[string]types.AttributeValue{
			"estorno_id": &types.AttributeValueMemberS{Value: estornoID},
			"id":         &types.AttributeValueMemberS{Value: chequeID},
		},
	})
	return err
}

func toEstornoItem(e entities.Estorno) estornoItem {
	return estornoItem{
		ID:           e.ID,
		DataRetirada: e.DataRetirada,
		QuemRetirou:  e.QuemRetirou,
		Protocolo:    e.Protocolo,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339Nano),
		Log:          toLogEntryItems(e.Log),
	}
}

func fromEstornoItem(it estornoItem) entities.Estorno {
	return entities.Estorno{
		ID:           it.ID,
		DataRetirada: it.DataRetirada,
		QuemRetirou:  it.QuemRetirou,
		Protocolo:    it.Protocolo,
		Status:       it.Status,
		CreatedAt:    parseTempo(it.CreatedAt),
		Log:          fromLogEntryItems(it.Log),
	}
}

func toEstornoChequeItem(c entities.EstornoCheque) estornoChequeItem {
	return estornoChequeItem{
		EstornoID:       c.EstornoID,
		ID:              c.ID,
		Leitora:         c.Leitora,
		NumeroCheque:    c.NumeroCheque,
		Nome:            c.Nome,
		CPF:             c.CPF,
		Valor:           decimalToString(c.Valor),
		MotivoDevolucao: c.MotivoDevolucao,
		NumeroOperacao:  c.NumeroOperacao,
		AnexoURL:        c.AnexoURL,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstornoChequeItem(it estornoChequeItem) entities.EstornoCheque {
	return entities.EstornoCheque{
		EstornoID:       it.EstornoID,
		ID:              it.ID,
		Leitora:         it.Leitora,
		NumeroCheque:    it.NumeroCheque,
		Nome:            it.Nome,
		CPF:             it.CPF,
		Valor:           decimalFromString(it.Valor),
		MotivoDevolucao: it.MotivoDevolucao,
		NumeroOperacao:  it.NumeroOperacao,
		AnexoURL:        it.AnexoURL,
		Status:          it.Status,
		CreatedAt:       parseTempo(it.CreatedAt),
	}
}
