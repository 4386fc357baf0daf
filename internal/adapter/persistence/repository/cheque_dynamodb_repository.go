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
	defaultChequesTableName = "cheques"
	chequesLocalIndex       = "local-index"
	chequesClienteIndex     = "client_id-index"
)

type chequeItem struct {
	ID              string         `dynamodbav:"id"`
	Leitora         string         `dynamodbav:"leitora"`
	NumeroCheque    string         `dynamodbav:"numero_cheque"`
	Banco           string         `dynamodbav:"banco"`
	Nome            string         `dynamodbav:"nome"`
	CPF             string         `dynamodbav:"cpf"`
	Valor           string         `dynamodbav:"valor"`
	Vencimento      string         `dynamodbav:"vencimento,omitempty"`
	MotivoDevolucao string         `dynamodbav:"motivo_devolucao,omitempty"`
	NumeroOperacao  string         `dynamodbav:"numero_operacao,omitempty"`
	AnexoURL        string         `dynamodbav:"anexo_url,omitempty"`
	QuemRetirou     string         `dynamodbav:"quem_retirou"`
	DataRetirada    string         `dynamodbav:"data_retirada"`
	Regiao          string         `dynamodbav:"regiao,omitempty"`
	Local           string         `dynamodbav:"local"`
	RemessaID       string         `dynamodbav:"remessa_id,omitempty"`
	ClienteID       string         `dynamodbav:"client_id,omitempty"`
	CreatedAt       string         `dynamodbav:"created_at"`
	Log             []logEntryItem `dynamodbav:"log,omitempty"`
}

// ChequeDynamoRepository persists canonical check records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: local-index (PK: local) — office listing for remessa selection
//   - GSI: client_id-index (PK: client_id) — client-role scoping at the query

type ChequeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChequeRepository = (*ChequeDynamoRepository)(nil)

func NewChequeDynamoRepository(ddb *dynamodb.Client) *ChequeDynamoRepository {
	return &ChequeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHEQUES_TABLE", defaultChequesTableName),
	}
}

func (r *ChequeDynamoRepository) Create(ctx context.Context, c entities.Cheque) (entities.Cheque, error) {
	av, err := attributevalue.MarshalMap(toChequeItem(c))
	if err != nil {
		return entities.Cheque{}, err
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
		return entities.Cheque{}, err
	}
	return c, nil
}

func (r *ChequeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cheque, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cheque{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cheque{}, nil
	}

	var it chequeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cheque{}, err
	}
	return fromChequeItem(it), nil
}

func (r *ChequeDynamoRepository) List(ctx context.Context) ([]entities.Cheque, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCheques(out.Items)
}

func (r *ChequeDynamoRepository) ListByLocal(ctx context.Context, local entities.LocalCheque) ([]entities.Cheque, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chequesLocalIndex),
		KeyConditionExpression: aws.String("#local = :local"),
		ExpressionAttributeNames: map[string]string{
			"#local": "local",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":local": &types.AttributeValueMemberS{Value: string(local)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCheques(out.Items)
}

func (r *ChequeDynamoRepository) ListByClienteID(ctx context.Context, clienteID string) ([]entities.Cheque, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chequesClienteIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clienteID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCheques(out.Items)
}

func (r *ChequeDynamoRepository) Update(ctx context.Context, c entities.Cheque, entrada entities.LogEntry) (entities.Cheque, error) {
	expr, values, names, err := chequeUpdateExpression(c, entrada)
	if err != nil {
		return entities.Cheque{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: c.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Cheque{}, nil
		}
		return entities.Cheque{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Cheque{}, nil
	}

	var it chequeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Cheque{}, err
	}
	return fromChequeItem(it), nil
}

func (r *ChequeDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ChequeDynamoRepository) TransitionLocal(ctx context.Context, id string, local entities.LocalCheque, remessaID string, entrada entities.LogEntry) error {
	entradas, err := marshalEntradasLog(entrada)
	if err != nil {
		return err
	}

	expr := "SET #local = :local, #log = list_append(if_not_exists(#log, :vazio), :entradas)"
	values := map[string]types.AttributeValue{
		":local":    &types.AttributeValueMemberS{Value: string(local)},
		":vazio":    listaVazia(),
		":entradas": entradas,
	}
	names := map[string]string{
		"#id":    "id",
		"#local": "local",
		"#log":   "log",
	}
	if remessaID != "" {
		expr += ", #remessa_id = :rid"
		values[":rid"] = &types.AttributeValueMemberS{Value: remessaID}
		names["#remessa_id"] = "remessa_id"
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
	})
	return err
}

// chequeUpdateExpression builds the full-field SET expression shared by the
// plain update and the dual-write transaction, log append included.
func chequeUpdateExpression(c entities.Cheque, entrada entities.LogEntry) (string, map[string]types.AttributeValue, map[string]string, error) {
	entradas, err := marshalEntradasLog(entrada)
	if err != nil {
		return "", nil, nil, err
	}

	expr := "SET #leitora = :leitora, #numero_cheque = :numero_cheque, #banco = :banco, #nome = :nome, " +
		"#cpf = :cpf, #valor = :valor, #vencimento = :vencimento, #motivo_devolucao = :motivo_devolucao, " +
		"#numero_operacao = :numero_operacao, #anexo_url = :anexo_url, #quem_retirou = :quem_retirou, " +
		"#data_retirada = :data_retirada, #regiao = :regiao, " +
		"#log = list_append(if_not_exists(#log, :vazio), :entradas)"

	values := map[string]types.AttributeValue{
		":leitora":          &types.AttributeValueMemberS{Value: c.Leitora},
		":numero_cheque":    &types.AttributeValueMemberS{Value: c.NumeroCheque},
		":banco":            &types.AttributeValueMemberS{Value: c.Banco},
		":nome":             &types.AttributeValueMemberS{Value: c.Nome},
		":cpf":              &types.AttributeValueMemberS{Value: c.CPF},
		":valor":            &types.AttributeValueMemberS{Value: decimalToString(c.Valor)},
		":vencimento":       &types.AttributeValueMemberS{Value: c.Vencimento},
		":motivo_devolucao": &types.AttributeValueMemberS{Value: c.MotivoDevolucao},
		":numero_operacao":  &types.AttributeValueMemberS{Value: c.NumeroOperacao},
		":anexo_url":        &types.AttributeValueMemberS{Value: c.AnexoURL},
		":quem_retirou":     &types.AttributeValueMemberS{Value: c.QuemRetirou},
		":data_retirada":    &types.AttributeValueMemberS{Value: c.DataRetirada},
		":regiao":           &types.AttributeValueMemberS{Value: c.Regiao},
		":vazio":            listaVazia(),
		":entradas":         entradas,
	}
	names := map[string]string{
		"#leitora":          "leitora",
		"#numero_cheque":    "numero_cheque",
		"#banco":            "banco",
		"#nome":             "nome",
		"#cpf":              "cpf",
		"#valor":            "valor",
		"#vencimento":       "vencimento",
		"#motivo_devolucao": "motivo_devolucao",
		"#numero_operacao":  "numero_operacao",
		"#anexo_url":        "anexo_url",
		"#quem_retirou":     "quem_retirou",
		"#data_retirada":    "data_retirada",
		"#regiao":           "regiao",
		"#log":              "log",
	}
	return expr, values, names, nil
}

func unmarshalCheques(raw []map[string]types.AttributeValue) ([]entities.Cheque, error) {
	cheques := make([]entities.Cheque, 0, len(raw))
	for _, item := range raw {
		var it chequeItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		cheques = append(cheques, fromChequeItem(it))
	}
	return cheques, nil
}

func toChequeItem(c entities.Cheque) chequeItem {
	return chequeItem{
		ID:              c.ID,
		Leitora:         c.Leitora,
		NumeroCheque:    c.NumeroCheque,
		Banco:           c.Banco,
		Nome:            c.Nome,
		CPF:             c.CPF,
		Valor:           decimalToString(c.Valor),
		Vencimento:      c.Vencimento,
		MotivoDevolucao: c.MotivoDevolucao,
		NumeroOperacao:  c.NumeroOperacao,
		AnexoURL:        c.AnexoURL,
		QuemRetirou:     c.QuemRetirou,
		DataRetirada:    c.DataRetirada,
		Regiao:          c.Regiao,
		Local:           string(c.Local),
		RemessaID:       c.RemessaID,
		ClienteID:       c.ClienteID,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339Nano),
		Log:             toLogEntryItems(c.Log),
	}
}

func fromChequeItem(it chequeItem) entities.Cheque {
	return entities.Cheque{
		ID:              it.ID,
		Leitora:         it.Leitora,
		NumeroCheque:    it.NumeroCheque,
		Banco:           it.Banco,
		Nome:            it.Nome,
		CPF:             it.CPF,
		Valor:           decimalFromString(it.Valor),
		Vencimento:      it.Vencimento,
		MotivoDevolucao: it.MotivoDevolucao,
		NumeroOperacao:  it.NumeroOperacao,
		AnexoURL:        it.AnexoURL,
		QuemRetirou:     it.QuemRetirou,
		DataRetirada:    it.DataRetirada,
		Regiao:          it.Regiao,
		Local:           entities.LocalCheque(it.Local),
		RemessaID:       it.RemessaID,
		ClienteID:       it.ClienteID,
		CreatedAt:       parseTempo(it.CreatedAt),
		Log:             fromLogEntryItems(it.Log),
	}
}
