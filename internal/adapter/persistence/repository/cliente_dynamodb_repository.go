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
	defaultClientesTableName = "clientes"
	clientesEmailIndex       = "email-index"
)

type clienteItem struct {
	ID        string `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	Email     string `dynamodbav:"email"`
	SenhaHash string `dynamodbav:"senha_hash"`
	SenhaSalt string `dynamodbav:"senha_salt"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ClienteDynamoRepository persists client accounts.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email) — uniqueness check and credential lookup

type ClienteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClienteRepository = (*ClienteDynamoRepository)(nil)

func NewClienteDynamoRepository(ddb *dynamodb.Client) *ClienteDynamoRepository {
	return &ClienteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTES_TABLE", defaultClientesTableName),
	}
}

func (r *ClienteDynamoRepository) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	av, err := attributevalue.MarshalMap(toClienteItem(c))
	if err != nil {
		return entities.Cliente{}, err
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
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cliente{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cliente{}, nil
	}

	var it clienteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cliente{}, err
	}
	return fromClienteItem(it), nil
}

func (r *ClienteDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Cliente, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(clientesEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Cliente{}, err
	}
	if len(out.Items) == 0 {
		return entities.Cliente{}, nil
	}

	var it clienteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Cliente{}, err
	}
	return fromClienteItem(it), nil
}

func (r *ClienteDynamoRepository) List(ctx context.Context) ([]entities.Cliente, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	clientes := make([]entities.Cliente, 0, len(out.Items))
	for _, raw := range out.Items {
		var it clienteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		clientes = append(clientes, fromClienteItem(it))
	}
	return clientes, nil
}

func (r *ClienteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toClienteItem(c entities.Cliente) clienteItem {
	return clienteItem{
		ID:        c.ID,
		Nome:      c.Nome,
		Email:     c.Email,
		SenhaHash: c.SenhaHash,
		SenhaSalt: c.SenhaSalt,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClienteItem(it clienteItem) entities.Cliente {
	return entities.Cliente{
		ID:        it.ID,
		Nome:      it.Nome,
		Email:     it.Email,
		SenhaHash: it.SenhaHash,
		SenhaSalt: it.SenhaSalt,
		CreatedAt: parseTempo(it.CreatedAt),
	}
}
