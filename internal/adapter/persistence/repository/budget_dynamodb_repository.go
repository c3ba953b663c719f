package repository

import (
	"context"
	"strconv"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultBudgetsTableName = "budgets"
	budgetsYearIndex        = "year-index"
)

type budgetItem struct {
	ID         string     `dynamodbav:"id"`
	CostCenter string     `dynamodbav:"cost_center"`
	Category   string     `dynamodbav:"category"`
	Project    string     `dynamodbav:"project"`
	Year       int        `dynamodbav:"year"`
	Total      ddbDecimal `dynamodbav:"total"`
	Used       ddbDecimal `dynamodbav:"used"`
	Reserved   ddbDecimal `dynamodbav:"reserved"`
	Available  ddbDecimal `dynamodbav:"available"`
	CreatedAt  string     `dynamodbav:"created_at"`
	UpdatedAt  string     `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, cost_center#project#category#year)
//   - GSI: year-index (PK: year, number)
//
// available is stored next to total/used/reserved so reservation
// transactions can guard on it directly.

type BudgetDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoAPI, tableName string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultBudgetsTableName)}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, asConditionFailed(err)
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// UpdateTotal moves total and available by the same delta, guarded on the
// total, used and reserved amounts of current.
func (r *BudgetDynamoRepository) UpdateTotal(ctx context.Context, current entities.Budget, newTotal decimal.Decimal) (entities.Budget, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(current.ID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #total = :old_total AND #used = :old_used AND #reserved = :old_reserved"),
		UpdateExpression:    aws.String("SET #total = :new_total, #available = #available + :delta, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#total":      "total",
			"#used":       "used",
			"#reserved":   "reserved",
			"#available":  "available",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":old_total":    numberValue(current.Total),
			":old_used":     numberValue(current.Used),
			":old_reserved": numberValue(current.Reserved),
			":new_total":    numberValue(newTotal),
			":delta":        numberValue(newTotal.Sub(current.Total)),
			":updated_at":   stringValue(nowString()),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Budget{}, asConditionFailed(err)
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) ListByYear(ctx context.Context, year int, costCenter string) ([]entities.Budget, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsYearIndex),
		KeyConditionExpression: aws.String("#year = :year"),
		ExpressionAttributeNames: map[string]string{
			"#year": "year",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":year": &types.AttributeValueMemberN{Value: strconv.Itoa(year)},
		},
	}
	if costCenter != "" {
		in.FilterExpression = aws.String("#cost_center = :cost_center")
		in.ExpressionAttributeNames["#cost_center"] = "cost_center"
		in.ExpressionAttributeValues[":cost_center"] = stringValue(costCenter)
	}

	budgets := make([]entities.Budget, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it budgetItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			budgets = append(budgets, fromBudgetItem(it))
		}
	}
	return budgets, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:         b.ID,
		CostCenter: b.CostCenter,
		Category:   b.Category,
		Project:    b.Project,
		Year:       b.Year,
		Total:      ddbDecimal{b.Total},
		Used:       ddbDecimal{b.Used},
		Reserved:   ddbDecimal{b.Reserved},
		Available:  ddbDecimal{b.Available},
		CreatedAt:  formatTime(b.CreatedAt),
		UpdatedAt:  formatTime(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:         it.ID,
		CostCenter: it.CostCenter,
		Category:   it.Category,
		Project:    it.Project,
		Year:       it.Year,
		Total:      it.Total.Decimal,
		Used:       it.Used.Decimal,
		Reserved:   it.Reserved.Decimal,
		Available:  it.Available.Decimal,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
