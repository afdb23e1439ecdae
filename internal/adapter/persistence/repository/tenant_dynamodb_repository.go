package repository

import (
	"context"
	"strings"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTenantsTableName = "resident_tenants"

type tenantItem struct {
	Unit       string `dynamodbav:"unit"`
	TenantKey  string `dynamodbav:"tenant_key"`
	FirstName  string `dynamodbav:"first_name"`
	LastName   string `dynamodbav:"last_name"`
	PhoneLast4 string `dynamodbav:"phone_last4"`
}

// TenantDynamoRepository reads tenancy records from DynamoDB.
//
// Table requirements:
//   - PK: unit (string, uppercased)
//   - SK: tenant_key (string, "<lastname>#<phone last 4>")
type TenantDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ITenantDirectory = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb dynamoAPI) *TenantDynamoRepository {
	return &TenantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TENANTS_TABLE", defaultTenantsTableName),
	}
}

func (r *TenantDynamoRepository) ListByUnit(ctx context.Context, unit string) ([]entities.Tenant, error) {
	var (
		out       []entities.Tenant
		startFrom map[string]types.AttributeValue
	)
	for {
		page, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#unit = :unit"),
			ExpressionAttributeNames: map[string]string{
				"#unit": "unit",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":unit": &types.AttributeValueMemberS{Value: unit},
			},
			ExclusiveStartKey: startFrom,
		})
		if err != nil {
			return nil, err
		}

		var items []tenantItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromTenantItem(it))
		}

		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startFrom = page.LastEvaluatedKey
	}
}

// Create stores a tenancy record. A duplicate key yields ErrItemExists.
func (r *TenantDynamoRepository) Create(ctx context.Context, t entities.Tenant) error {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#unit) AND attribute_not_exists(#tk)"),
		ExpressionAttributeNames: map[string]string{
			"#unit": "unit",
			"#tk":   "tenant_key",
		},
	})
	return mapConditionalPut(err)
}

func toTenantItem(t entities.Tenant) tenantItem {
	unit := strings.ToUpper(strings.TrimSpace(t.Unit))
	return tenantItem{
		Unit:       unit,
		TenantKey:  strings.ToLower(strings.TrimSpace(t.LastName)) + "#" + strings.TrimSpace(t.PhoneLast4),
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		PhoneLast4: t.PhoneLast4,
	}
}

func fromTenantItem(it tenantItem) entities.Tenant {
	return entities.Tenant{
		Unit:       it.Unit,
		FirstName:  it.FirstName,
		LastName:   it.LastName,
		PhoneLast4: it.PhoneLast4,
	}
}
