package repository

import (
	"context"
	"time"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultReservationsTableName   = "reservations"
	reservationsRequisitionIDIndex = "requisition_id-index"
)

// Operation order inside every reservation transaction.
const (
	txReservationOp = 0
	txBudgetOp      = 1
)

type reservationItem struct {
	ID             string      `dynamodbav:"id"`
	RequisitionID  string      `dynamodbav:"requisition_id"`
	BudgetID       string      `dynamodbav:"budget_id"`
	CostCenter     string      `dynamodbav:"cost_center"`
	Category       string      `dynamodbav:"category,omitempty"`
	Project        string      `dynamodbav:"project,omitempty"`
	Amount         ddbDecimal  `dynamodbav:"amount"`
	Status         string      `dynamodbav:"status"`
	CancelReason   string      `dynamodbav:"cancel_reason,omitempty"`
	RealizedAmount *ddbDecimal `dynamodbav:"realized_amount,omitempty"`
	ConfirmedAt    string      `dynamodbav:"confirmed_at,omitempty"`
	CancelledAt    string      `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt      string      `dynamodbav:"created_at"`
	UpdatedAt      string      `dynamodbav:"updated_at"`
}

// ReservationDynamoRepository persists reservations and moves the owning
// budget's amounts in the same TransactWriteItems call.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: requisition_id-index (PK: requisition_id)

type ReservationDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	budgetsTable string
}

var _ interfaces.IReservationRepository = (*ReservationDynamoRepository)(nil)

func NewReservationDynamoRepository(ddb DynamoAPI, tableName, budgetsTable string) *ReservationDynamoRepository {
	return &ReservationDynamoRepository{
		ddb:          ddb,
		tableName:    tableOrDefault(tableName, defaultReservationsTableName),
		budgetsTable: tableOrDefault(budgetsTable, defaultBudgetsTableName),
	}
}

// Create writes an ativa reservation and moves Amount from available to
// reserved, only if the budget still has it.
func (r *ReservationDynamoRepository) Create(ctx context.Context, res entities.Reservation) (entities.Reservation, error) {
	av, err := attributevalue.MarshalMap(toReservationItem(res))
	if err != nil {
		return entities.Reservation{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			txReservationOp: {Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			txBudgetOp: {Update: &types.Update{
				TableName:           aws.String(r.budgetsTable),
				Key:                 idKey(res.BudgetID),
				ConditionExpression: aws.String("attribute_exists(#id) AND #available >= :amount"),
				UpdateExpression:    aws.String("SET #reserved = #reserved + :amount, #available = #available - :amount, #updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#reserved":   "reserved",
					"#available":  "available",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":amount": numberValue(res.Amount),
					":now":    stringValue(formatTime(res.CreatedAt)),
				},
			}},
		},
	})
	if err != nil {
		codes := cancellationReasons(err)
		switch {
		case conditionFailedAt(codes, txBudgetOp):
			return entities.Reservation{}, interfaces.ErrInsufficientAvailable
		case conditionFailedAt(codes, txReservationOp):
			return entities.Reservation{}, interfaces.ErrConditionFailed
		}
		return entities.Reservation{}, err
	}
	return res, nil
}

// Cancel releases the reserved amount back to available.
func (r *ReservationDynamoRepository) Cancel(ctx context.Context, res entities.Reservation, reason string, at time.Time) (entities.Reservation, error) {
	now := formatTime(at)
	err := r.transition(ctx, res,
		"SET #status = :next, #cancel_reason = :reason, #cancelled_at = :now, #updated_at = :now",
		map[string]string{"#cancel_reason": "cancel_reason", "#cancelled_at": "cancelled_at"},
		map[string]types.AttributeValue{
			":next":   stringValue(string(entities.ReservationStatusCancelada)),
			":reason": stringValue(reason),
			":now":    stringValue(now),
		},
		"SET #reserved = #reserved - :amount, #available = #available + :amount, #updated_at = :now",
		map[string]types.AttributeValue{
			":amount": numberValue(res.Amount),
			":now":    stringValue(now),
		},
	)
	if err != nil {
		return entities.Reservation{}, err
	}

	res.Status = entities.ReservationStatusCancelada
	res.CancelReason = reason
	res.CancelledAt = &at
	res.UpdatedAt = at
	return res, nil
}

// Confirm turns the reservation into realized spend. The difference between
// the reserved and realized amounts goes back to available; it may be negative.
func (r *ReservationDynamoRepository) Confirm(ctx context.Context, res entities.Reservation, realized decimal.Decimal, at time.Time) (entities.Reservation, error) {
	now := formatTime(at)
	err := r.transition(ctx, res,
		"SET #status = :next, #realized_amount = :realized, #confirmed_at = :now, #updated_at = :now",
		map[string]string{"#realized_amount": "realized_amount", "#confirmed_at": "confirmed_at"},
		map[string]types.AttributeValue{
			":next":     stringValue(string(entities.ReservationStatusConfirmada)),
			":realized": numberValue(realized),
			":now":      stringValue(now),
		},
		"SET #reserved = #reserved - :amount, #used = #used + :realized, #available = #available + :delta, #updated_at = :now",
		map[string]types.AttributeValue{
			":amount":   numberValue(res.Amount),
			":realized": numberValue(realized),
			":delta":    numberValue(res.Amount.Sub(realized)),
			":now":      stringValue(now),
		},
	)
	if err != nil {
		return entities.Reservation{}, err
	}

	res.Status = entities.ReservationStatusConfirmada
	res.RealizedAmount = &realized
	res.ConfirmedAt = &at
	res.UpdatedAt = at
	return res, nil
}

func (r *ReservationDynamoRepository) transition(
	ctx context.Context,
	res entities.Reservation,
	reservationExpr string,
	reservationNames map[string]string,
	reservationValues map[string]types.AttributeValue,
	budgetExpr string,
	budgetValues map[string]types.AttributeValue,
) error {
	reservationValues[":active"] = stringValue(string(entities.ReservationStatusAtiva))

	budgetNames := map[string]string{
		"#reserved":   "reserved",
		"#available":  "available",
		"#updated_at": "updated_at",
	}
	if _, ok := budgetValues[":realized"]; ok {
		budgetNames["#used"] = "used"
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			txReservationOp: {Update: &types.Update{
				TableName:           aws.String(r.tableName),
				Key:                 idKey(res.ID),
				ConditionExpression: aws.String("#status = :active"),
				UpdateExpression:    aws.String(reservationExpr),
				ExpressionAttributeNames: mergeNames(reservationNames, map[string]string{
					"#status":     "status",
					"#updated_at": "updated_at",
				}),
				ExpressionAttributeValues: reservationValues,
			}},
			txBudgetOp: {Update: &types.Update{
				TableName:                 aws.String(r.budgetsTable),
				Key:                       idKey(res.BudgetID),
				ConditionExpression:       aws.String("attribute_exists(#id)"),
				UpdateExpression:          aws.String(budgetExpr),
				ExpressionAttributeNames:  mergeNames(budgetNames, map[string]string{"#id": "id"}),
				ExpressionAttributeValues: budgetValues,
			}},
		},
	})
	if err != nil {
		codes := cancellationReasons(err)
		switch {
		case conditionFailedAt(codes, txReservationOp):
			return interfaces.ErrReservationNotActive
		case conditionFailedAt(codes, txBudgetOp):
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}

func (r *ReservationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Reservation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Reservation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Reservation{}, nil
	}

	var it reservationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationItem(it), nil
}

func (r *ReservationDynamoRepository) ListByRequisitionID(ctx context.Context, requisitionID string) ([]entities.Reservation, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservationsRequisitionIDIndex),
		KeyConditionExpression: aws.String("requisition_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": stringValue(requisitionID),
		},
	})

	items := make([]entities.Reservation, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it reservationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromReservationItem(it))
		}
	}
	return items, nil
}

func toReservationItem(r entities.Reservation) reservationItem {
	it := reservationItem{
		ID:            r.ID,
		RequisitionID: r.RequisitionID,
		BudgetID:      r.BudgetID,
		CostCenter:    r.CostCenter,
		Category:      r.Category,
		Project:       r.Project,
		Amount:        ddbDecimal{r.Amount},
		Status:        string(r.Status),
		CancelReason:  r.CancelReason,
		CreatedAt:     formatTime(r.CreatedAt),
		UpdatedAt:     formatTime(r.UpdatedAt),
	}
	if r.RealizedAmount != nil {
		it.RealizedAmount = &ddbDecimal{*r.RealizedAmount}
	}
	if r.ConfirmedAt != nil {
		it.ConfirmedAt = formatTime(*r.ConfirmedAt)
	}
	if r.CancelledAt != nil {
		it.CancelledAt = formatTime(*r.CancelledAt)
	}
	return it
}

func fromReservationItem(it reservationItem) entities.Reservation {
	r := entities.Reservation{
		ID:            it.ID,
		RequisitionID: it.RequisitionID,
		BudgetID:      it.BudgetID,
		CostCenter:    it.CostCenter,
		Category:      it.Category,
		Project:       it.Project,
		Amount:        it.Amount.Decimal,
		Status:        entities.ReservationStatus(it.Status),
		CancelReason:  it.CancelReason,
		ConfirmedAt:   parseTimePtr(it.ConfirmedAt),
		CancelledAt:   parseTimePtr(it.CancelledAt),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.RealizedAmount != nil {
		realized := it.RealizedAmount.Decimal
		r.RealizedAmount = &realized
	}
	return r
}
