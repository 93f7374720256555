package repository

import (
	"context"
	"strings"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/infrastructure/logging"
	"solar_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const catalogCategoryIndex = "category-index"

type catalogItemRecord struct {
	ID            int64             `dynamodbav:"id"`
	Name          string            `dynamodbav:"name"`
	Category      string            `dynamodbav:"category"`
	Unit          string            `dynamodbav:"unit"`
	ImportCost    string            `dynamodbav:"import_cost"`
	MarginRate    string            `dynamodbav:"margin_rate,omitempty"`
	WarrantyYears *int              `dynamodbav:"warranty_years,omitempty"`
	ImageURL      string            `dynamodbav:"image_url,omitempty"`
	Specs         map[string]string `dynamodbav:"specs,omitempty"`
}

// CatalogDynamoSource reads the product catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: category-index (PK: category)
//
// Money is stored as decimal strings. Records that cannot be read are skipped
// and logged; they never fail the whole listing.
type CatalogDynamoSource struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICatalogSource = (*CatalogDynamoSource)(nil)

func NewCatalogDynamoSource(ddb DynamoDBAPI, tableName string) *CatalogDynamoSource {
	return &CatalogDynamoSource{ddb: ddb, tableName: tableName}
}

func (s *CatalogDynamoSource) FetchAll(ctx context.Context, category *entities.Category) ([]entities.CatalogItem, error) {
	var raws []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		var (
			page    []map[string]types.AttributeValue
			lastKey map[string]types.AttributeValue
		)
		if category != nil {
			out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
				TableName:              aws.String(s.tableName),
				IndexName:              aws.String(catalogCategoryIndex),
				KeyConditionExpression: aws.String("#category = :category"),
				ExpressionAttributeNames: map[string]string{
					"#category": "category",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":category": &types.AttributeValueMemberS{Value: string(*category)},
				},
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return nil, err
			}
			page, lastKey = out.Items, out.LastEvaluatedKey
		} else {
			out, err := s.ddb.Scan(ctx, &dynamodb.ScanInput{
				TableName:         aws.String(s.tableName),
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return nil, err
			}
			page, lastKey = out.Items, out.LastEvaluatedKey
		}
		raws = append(raws, page...)
		if len(lastKey) == 0 {
			break
		}
		startKey = lastKey
	}

	items := make([]entities.CatalogItem, 0, len(raws))
	for _, raw := range raws {
		var rec catalogItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			logging.L().Warn("[catalog][dynamodb] skipping unreadable record", zap.Error(err))
			continue
		}
		item, ok := fromCatalogItemRecord(rec)
		if !ok {
			logging.L().Warn("[catalog][dynamodb] skipping record with invalid money fields", zap.Int64("id", rec.ID))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func fromCatalogItemRecord(rec catalogItemRecord) (entities.CatalogItem, bool) {
	cost, err := decimal.NewFromString(rec.ImportCost)
	if err != nil || rec.ID <= 0 {
		return entities.CatalogItem{}, false
	}
	var margin decimal.NullDecimal
	if strings.TrimSpace(rec.MarginRate) != "" {
		m, err := decimal.NewFromString(rec.MarginRate)
		if err != nil {
			return entities.CatalogItem{}, false
		}
		margin = decimal.NewNullDecimal(m)
	}
	category, _ := entities.ParseCategory(rec.Category)
	return entities.CatalogItem{
		ID:            rec.ID,
		Name:          rec.Name,
		Category:      category,
		Unit:          rec.Unit,
		ImportCost:    cost,
		MarginRate:    margin,
		WarrantyYears: rec.WarrantyYears,
		ImageURL:      rec.ImageURL,
		Specs:         rec.Specs,
	}, true
}
