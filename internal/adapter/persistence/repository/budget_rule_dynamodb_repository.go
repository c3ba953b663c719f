package repository

import (
	"context"
	"fmt"
	"sort"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultBudgetRulesTableName = "budget_rules"

type budgetRuleItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Kind      string `dynamodbav:"kind"`
	Condition string `dynamodbav:"condition"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BudgetRuleDynamoRepository persists BudgetRule entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The condition is stored as its JSON encoding next to kind and decoded
// strictly on read.

type BudgetRuleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBudgetRuleRepository = (*BudgetRuleDynamoRepository)(nil)

func NewBudgetRuleDynamoRepository(ddb DynamoAPI, tableName string) *BudgetRuleDynamoRepository {
	return &BudgetRuleDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultBudgetRulesTableName)}
}

func (r *BudgetRuleDynamoRepository) Create(ctx context.Context, rule entities.BudgetRule) (entities.BudgetRule, error) {
	return r.put(ctx, rule, "attribute_not_exists(#id)")
}

// Update overwrites an existing rule; a missing row yields ErrConditionFailed.
func (r *BudgetRuleDynamoRepository) Update(ctx context.Context, rule entities.BudgetRule) (entities.BudgetRule, error) {
	return r.put(ctx, rule, "attribute_exists(#id)")
}

func (r *BudgetRuleDynamoRepository) put(ctx context.Context, rule entities.BudgetRule, condition string) (entities.BudgetRule, error) {
	it, err := toBudgetRuleItem(rule)
	if err != nil {
		return entities.BudgetRule{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BudgetRule{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.BudgetRule{}, asConditionFailed(err)
	}
	return rule, nil
}

func (r *BudgetRuleDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetRule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetRule{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetRule{}, nil
	}

	var it budgetRuleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetRule{}, err
	}
	return fromBudgetRuleItem(it)
}

func (r *BudgetRuleDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

// List returns every rule ordered by creation time.
func (r *BudgetRuleDynamoRepository) List(ctx context.Context) ([]entities.BudgetRule, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	rules := make([]entities.BudgetRule, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it budgetRuleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rule, err := fromBudgetRuleItem(it)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].CreatedAt.Before(rules[j].CreatedAt)
	})
	return rules, nil
}

func toBudgetRuleItem(rule entities.BudgetRule) (budgetRuleItem, error) {
	if rule.Condition == nil {
		return budgetRuleItem{}, fmt.Errorf("%w: rule %s has no condition", entities.ErrInvalidRuleCondition, rule.ID)
	}
	cond, err := entities.EncodeRuleCondition(rule.Condition)
	if err != nil {
		return budgetRuleItem{}, err
	}
	return budgetRuleItem{
		ID:        rule.ID,
		Name:      rule.Name,
		Kind:      string(rule.Kind()),
		Condition: string(cond),
		Active:    rule.Active,
		CreatedAt: formatTime(rule.CreatedAt),
		UpdatedAt: formatTime(rule.UpdatedAt),
	}, nil
}

func fromBudgetRuleItem(it budgetRuleItem) (entities.BudgetRule, error) {
	cond, err := entities.DecodeRuleCondition(entities.RuleKind(it.Kind), []byte(it.Condition))
	if err != nil {
		return entities.BudgetRule{}, fmt.Errorf("rule %s: %w", it.ID, err)
	}
	return entities.BudgetRule{
		ID:        it.ID,
		Name:      it.Name,
		Condition: cond,
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}
