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

const defaultAccountsTableName = "resident_accounts"

type accountItem struct {
	Email    string `dynamodbav:"email"`
	Password string `dynamodbav:"password"`
	Name     string `dynamodbav:"name"`
	Unit     string `dynamodbav:"unit"`
}

// AccountDynamoRepository resolves resident credentials from DynamoDB.
//
// Table requirements:
//   - PK: email (string, lowercased)
type AccountDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IAuthProvider = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb dynamoAPI) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) Lookup(ctx context.Context, email string) (entities.Account, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, false, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, false, err
	}
	return fromAccountItem(it), true, nil
}

// Create stores a new account. An existing email yields ErrItemExists.
func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) error {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	return mapConditionalPut(err)
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		Email:    strings.ToLower(strings.TrimSpace(a.Email)),
		Password: a.Password,
		Name:     a.Name,
		Unit:     a.Unit,
	}
}

func fromAccountItem(it accountItem) entities.Account {
	return entities.Account{
		Email:    it.Email,
		Password: it.Password,
		Name:     it.Name,
		Unit:     it.Unit,
	}
}
