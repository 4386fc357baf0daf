package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"custodia_cheques/internal/domain/entities"
	"custodia_cheques/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const maxTentativasTransacao = 3

// CustodiaTransacaoDynamoRepository keeps the canonical cheque record and the
// summary embedded in its remessa in sync through TransactWriteItems.
//
// The remessa carries a versao counter. Every transaction conditions the
// remessa write on the versao read beforehand and increments it, so a
// concurrent writer cancels the transaction instead of clobbering the
// embedded list. Cancelled attempts are re-read and retried up to
// maxTentativasTransacao times before giving up with ErrConflitoDeEscrita.

type CustodiaTransacaoDynamoRepository struct {
	ddb          *dynamodb.Client
	chequesTable string
	remessaTable string
}

var _ interfaces.ITransacaoCustodia = (*CustodiaTransacaoDynamoRepository)(nil)

func NewCustodiaTransacaoDynamoRepository(ddb *dynamodb.Client) *CustodiaTransacaoDynamoRepository {
	return &CustodiaTransacaoDynamoRepository{
		ddb:          ddb,
		chequesTable: getenvDefault("CHEQUES_TABLE", defaultChequesTableName),
		remessaTable: getenvDefault("REMESSAS_TABLE", defaultRemessasTableName),
	}
}

func (r *CustodiaTransacaoDynamoRepository) AtualizarChequeEmRemessa(ctx context.Context, cheque entities.Cheque, entradaCheque, entradaRemessa entities.LogEntry) error {
	for tentativa := 0; tentativa < maxTentativasTransacao; tentativa++ {
		rem, err := r.lerRemessa(ctx, cheque.RemessaID)
		if err != nil {
			return err
		}

		idx := rem.IndexCheque(cheque.ID)
		if idx < 0 {
			return interfaces.ErrChequeNaoEstaNaRemessa
		}
		cheques := make([]entities.ChequeResumo, len(rem.Cheques))
		copy(cheques, rem.Cheques)
		cheques[idx] = cheque.Resumo()

		itemRemessa, err := r.updateRemessaItem(rem, cheques, entradaRemessa)
		if err != nil {
			return err
		}

		expr, values, names, err := chequeUpdateExpression(cheque, entradaCheque)
		if err != nil {
			return err
		}
		itemCheque := types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.chequesTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: cheque.ID},
				},
				ConditionExpression:       aws.String("attribute_exists(#id)"),
				UpdateExpression:          aws.String(expr),
				ExpressionAttributeValues: values,
				ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
			},
		}

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{itemRemessa, itemCheque},
		})
		if err == nil {
			return nil
		}
		if !transacaoCancelada(err) {
			return err
		}
	}
	return interfaces.ErrConflitoDeEscrita
}

func (r *CustodiaTransacaoDynamoRepository) RemoverChequeDaRemessa(ctx context.Context, chequeID, remessaID string, entradaRemessa entities.LogEntry) error {
	for tentativa := 0; tentativa < maxTentativasTransacao; tentativa++ {
		rem, err := r.lerRemessa(ctx, remessaID)
		if err != nil {
			return err
		}

		idx := rem.IndexCheque(chequeID)
		if idx < 0 {
			return interfaces.ErrChequeNaoEstaNaRemessa
		}
		cheques := make([]entities.ChequeResumo, 0, len(rem.Cheques)-1)
		cheques = append(cheques, rem.Cheques[:idx]...)
		cheques = append(cheques, rem.Cheques[idx+1:]...)

		itemRemessa, err := r.updateRemessaItem(rem, cheques, entradaRemessa)
		if err != nil {
			return err
		}
		itemCheque := types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.chequesTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: chequeID},
				},
			},
		}

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{itemRemessa, itemCheque},
		})
		if err == nil {
			return nil
		}
		if !transacaoCancelada(err) {
			return err
		}
	}
	return interfaces.ErrConflitoDeEscrita
}

func (r *CustodiaTransacaoDynamoRepository) lerRemessa(ctx context.Context, remessaID string) (entities.Remessa, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.remessaTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: remessaID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Remessa{}, fmt.Errorf("leitura da remessa %s: %w", remessaID, err)
	}
	if len(out.Item) == 0 {
		return entities.Remessa{}, interfaces.ErrRemessaNaoEncontrada
	}

	var it remessaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Remessa{}, err
	}
	return fromRemessaItem(it), nil
}

// updateRemessaItem rewrites the embedded list and bumps versao, conditioned
// on the versao value read in this attempt.
func (r *CustodiaTransacaoDynamoRepository) updateRemessaItem(rem entities.Remessa, cheques []entities.ChequeResumo, entrada entities.LogEntry) (types.TransactWriteItem, error) {
	items := make([]chequeResumoItem, 0, len(cheques))
	for _, c := range cheques {
		items = append(items, toChequeResumoItem(c))
	}
	resumos, err := attributevalue.MarshalList(items)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	entradas, err := marshalEntradasLog(entrada)
	if err != nil {
		return types.TransactWriteItem{}, err
	}

	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.remessaTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: rem.ID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #versao = :versao_lida"),
			UpdateExpression: aws.String("SET #cheques = :cheques, #versao = :versao_nova, " +
				"#log = list_append(if_not_exists(#log, :vazio), :entradas)"),
			ExpressionAttributeNames: map[string]string{
				"#id":      "id",
				"#versao":  "versao",
				"#cheques": "cheques",
				"#log":     "log",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":versao_lida": &types.AttributeValueMemberN{Value: strconv.FormatInt(rem.Versao, 10)},
				":versao_nova": &types.AttributeValueMemberN{Value: strconv.FormatInt(rem.Versao+1, 10)},
				":cheques":     &types.AttributeValueMemberL{Value: resumos},
				":vazio":       listaVazia(),
				":entradas":    entradas,
			},
		},
	}, nil
}

func transacaoCancelada(err error) bool {
	var tce *types.TransactionCanceledException
	return errors.As(err, &tce)
}
