package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const quoteCustomerIndex = "customer_id-index"

var ErrQuoteAlreadyExists = errors.New("priced quote already exists")

type pricedQuoteItem struct {
	ID                string `dynamodbav:"id"`
	SessionID         string `dynamodbav:"session_id"`
	AgentID           string `dynamodbav:"agent_id,omitempty"`
	CustomerID        string `dynamodbav:"customer_id,omitempty"`
	CustomerRaw       string `dynamodbav:"customer_raw"`
	GroupsRaw         string `dynamodbav:"groups_raw"`
	InstallationType  string `dynamodbav:"installation_type"`
	FrameSellPrice    string `dynamodbav:"frame_sell_price,omitempty"`
	FrameLaborPrice   string `dynamodbav:"frame_labor_price,omitempty"`
	Subtotal          string `dynamodbav:"subtotal"`
	InstallationTotal string `dynamodbav:"installation_total"`
	GrandTotal        string `dynamodbav:"grand_total"`
	GeneratedAt       string `dynamodbav:"generated_at"`
}

// PricedQuoteDynamoRepository persists finalized quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Quotes are write-once: Create refuses to overwrite an existing id.
type PricedQuoteDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPricedQuoteRepository = (*PricedQuoteDynamoRepository)(nil)

func NewPricedQuoteDynamoRepository(ddb DynamoDBAPI, tableName string) *PricedQuoteDynamoRepository {
	return &PricedQuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PricedQuoteDynamoRepository) Create(ctx context.Context, q entities.PricedQuote) (entities.PricedQuote, error) {
	it, err := toPricedQuoteItem(q)
	if err != nil {
		return entities.PricedQuote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PricedQuote{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PricedQuote{}, ErrQuoteAlreadyExists
		}
		return entities.PricedQuote{}, err
	}
	return q, nil
}

func (r *PricedQuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.PricedQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricedQuote{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricedQuote{}, nil
	}

	var it pricedQuoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricedQuote{}, err
	}
	return fromPricedQuoteItem(it)
}

func (r *PricedQuoteDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.PricedQuote, error) {
	var quotes []entities.PricedQuote
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(quoteCustomerIndex),
			KeyConditionExpression: aws.String("#customer_id = :customer_id"),
			ExpressionAttributeNames: map[string]string{
				"#customer_id": "customer_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":customer_id": &types.AttributeValueMemberS{Value: customerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it pricedQuoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			q, err := fromPricedQuoteItem(it)
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

func toPricedQuoteItem(q entities.PricedQuote) (pricedQuoteItem, error) {
	groups, err := json.Marshal(q.Groups)
	if err != nil {
		return pricedQuoteItem{}, fmt.Errorf("encode groups: %w", err)
	}
	customer, err := json.Marshal(q.Customer)
	if err != nil {
		return pricedQuoteItem{}, fmt.Errorf("encode customer: %w", err)
	}
	it := pricedQuoteItem{
		ID:                q.ID,
		SessionID:         q.SessionID,
		CustomerID:        q.Customer.CustomerID,
		CustomerRaw:       string(customer),
		GroupsRaw:         string(groups),
		InstallationType:  string(q.Installation.Type),
		FrameSellPrice:    decimalPtrToString(q.Installation.FrameSellPrice),
		FrameLaborPrice:   decimalPtrToString(q.Installation.FrameLaborPrice),
		Subtotal:          q.Subtotal.String(),
		InstallationTotal: q.InstallationTotal.String(),
		GrandTotal:        q.GrandTotal.String(),
		GeneratedAt:       formatTime(q.GeneratedAt),
	}
	if q.AgentID != nil {
		it.AgentID = int64ToString(*q.AgentID)
	}
	return it, nil
}

func fromPricedQuoteItem(it pricedQuoteItem) (entities.PricedQuote, error) {
	q := entities.PricedQuote{
		ID:        it.ID,
		SessionID: it.SessionID,
		Installation: entities.InstallationChoice{
			Type:            entities.InstallationType(it.InstallationType),
			FrameSellPrice:  parseDecimalPtr(it.FrameSellPrice),
			FrameLaborPrice: parseDecimalPtr(it.FrameLaborPrice),
		},
		Subtotal:          parseDecimal(it.Subtotal),
		InstallationTotal: parseDecimal(it.InstallationTotal),
		GrandTotal:        parseDecimal(it.GrandTotal),
		GeneratedAt:       parseTime(it.GeneratedAt),
	}
	if it.AgentID != "" {
		id, err := strconv.ParseInt(it.AgentID, 10, 64)
		if err == nil {
			q.AgentID = &id
		}
	}
	if it.GroupsRaw != "" {
		if err := json.Unmarshal([]byte(it.GroupsRaw), &q.Groups); err != nil {
			return entities.PricedQuote{}, fmt.Errorf("decode groups of quote %s: %w", it.ID, err)
		}
	}
	if it.CustomerRaw != "" {
		if err := json.Unmarshal([]byte(it.CustomerRaw), &q.Customer); err != nil {
			return entities.PricedQuote{}, fmt.Errorf("decode customer of quote %s: %w", it.ID, err)
		}
	}
	return q, nil
}
